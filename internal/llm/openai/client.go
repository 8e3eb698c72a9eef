package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/labreports-tracker/internal/llm"
)

// GenerateNotes implements llm.BatchNoter using text-only chat/completions.
// The response is salvaged to a bare JSON array, validated against the
// note-batch schema, and only then decoded; anything else is an error the
// enricher treats as a degraded batch.
func (c *Client) GenerateNotes(ctx context.Context, batch []llm.RowRequest) ([]llm.Note, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("enrich.notes.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"batch_size", len(batch),
	)

	schema := llm.BuildNoteBatchSchema()
	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{"role": "system", "content": llm.SystemInstruction},
			{"role": "user", "content": llm.BuildBatchPrompt(batch)},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	raw, _, httpErr := llm.SendJSON(ctx, c.httpClient, endpoint, body, headers, c.log)
	if httpErr != nil {
		c.log.Error("enrich.notes.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("enrich.notes.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("enrich.notes.no_choices",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("no choices in openai response")
	}
	content := strings.TrimSpace(cc.Choices[0].Message.Content)

	arr, err := llm.SalvageNoteArray([]byte(content))
	if err != nil {
		c.log.Error("enrich.notes.salvage_failed",
			"req_id", rid, "error", err, "content_bytes", len(content),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}
	if err := llm.ValidateJSONAgainstSchema(schema, arr); err != nil {
		c.log.Error("enrich.notes.schema_validation_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var notes []llm.Note
	if err := json.Unmarshal(arr, &notes); err != nil {
		return nil, fmt.Errorf("unmarshal notes: %w", err)
	}

	c.log.Info("enrich.notes.ok",
		"req_id", rid, "notes", len(notes),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return notes, nil
}

// Source identifies this provider for note provenance.
func (c *Client) Source() string {
	return "openai:" + c.cfg.Model
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
