package constants

// PromptVersion tags every note's provenance so prompt changes are auditable.
const PromptVersion = "prompt-v2"

// NoteSourceFallback marks notes synthesized locally when the generation
// service produced no usable output for a row.
const NoteSourceFallback = "fallback"

// FallbackConfidence is the fixed confidence attached to fallback notes.
const FallbackConfidence float32 = 0.25
