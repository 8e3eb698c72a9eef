// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: labreports/v1/labreports.proto

package labreportsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Profile struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,3,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	UpdatedAt     string                 `protobuf:"bytes,4,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Profile) Reset() {
	*x = Profile{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Profile) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Profile) ProtoMessage() {}

func (x *Profile) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Profile.ProtoReflect.Descriptor instead.
func (*Profile) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{0}
}

func (x *Profile) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Profile) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Profile) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Profile) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ReportFile struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProfileId     string                 `protobuf:"bytes,2,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	Filename      string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	UploadedAt    string                 `protobuf:"bytes,4,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReportFile) Reset() {
	*x = ReportFile{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReportFile) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReportFile) ProtoMessage() {}

func (x *ReportFile) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReportFile.ProtoReflect.Descriptor instead.
func (*ReportFile) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{1}
}

func (x *ReportFile) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ReportFile) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ReportFile) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ReportFile) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

type AnalysisJob struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FileId        string                 `protobuf:"bytes,2,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	ProfileId     string                 `protobuf:"bytes,3,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`                                 // QUEUED | RUNNING | COMPLETED | FAILED
	Progress      int32                  `protobuf:"varint,5,opt,name=progress,proto3" json:"progress,omitempty"`                            // 0..100
	ResultId      string                 `protobuf:"bytes,6,opt,name=result_id,json=resultId,proto3" json:"result_id,omitempty"`             // set when COMPLETED
	ErrorMessage  string                 `protobuf:"bytes,7,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"` // set when FAILED
	CreatedAt     string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`          // RFC 3339
	UpdatedAt     string                 `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`          // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalysisJob) Reset() {
	*x = AnalysisJob{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalysisJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalysisJob) ProtoMessage() {}

func (x *AnalysisJob) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalysisJob.ProtoReflect.Descriptor instead.
func (*AnalysisJob) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{2}
}

func (x *AnalysisJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *AnalysisJob) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *AnalysisJob) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *AnalysisJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *AnalysisJob) GetProgress() int32 {
	if x != nil {
		return x.Progress
	}
	return 0
}

func (x *AnalysisJob) GetResultId() string {
	if x != nil {
		return x.ResultId
	}
	return ""
}

func (x *AnalysisJob) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *AnalysisJob) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *AnalysisJob) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type RowNote struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	Confidence    float32                `protobuf:"fixed32,2,opt,name=confidence,proto3" json:"confidence,omitempty"` // 0..1
	Source        string                 `protobuf:"bytes,3,opt,name=source,proto3" json:"source,omitempty"`           // e.g. "openai:gpt-4o-mini:prompt-v2"
	CreatedAt     string                 `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RowNote) Reset() {
	*x = RowNote{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RowNote) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RowNote) ProtoMessage() {}

func (x *RowNote) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RowNote.ProtoReflect.Descriptor instead.
func (*RowNote) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{3}
}

func (x *RowNote) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *RowNote) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *RowNote) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *RowNote) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type TestRow struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Value         float64                `protobuf:"fixed64,3,opt,name=value,proto3" json:"value,omitempty"`
	Unit          string                 `protobuf:"bytes,4,opt,name=unit,proto3" json:"unit,omitempty"`
	RefMin        float64                `protobuf:"fixed64,5,opt,name=ref_min,json=refMin,proto3" json:"ref_min,omitempty"`
	RefMax        float64                `protobuf:"fixed64,6,opt,name=ref_max,json=refMax,proto3" json:"ref_max,omitempty"`
	Status        string                 `protobuf:"bytes,7,opt,name=status,proto3" json:"status,omitempty"` // normal | low | high | critical
	Note          *RowNote               `protobuf:"bytes,8,opt,name=note,proto3" json:"note,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TestRow) Reset() {
	*x = TestRow{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TestRow) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TestRow) ProtoMessage() {}

func (x *TestRow) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TestRow.ProtoReflect.Descriptor instead.
func (*TestRow) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{4}
}

func (x *TestRow) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *TestRow) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *TestRow) GetValue() float64 {
	if x != nil {
		return x.Value
	}
	return 0
}

func (x *TestRow) GetUnit() string {
	if x != nil {
		return x.Unit
	}
	return ""
}

func (x *TestRow) GetRefMin() float64 {
	if x != nil {
		return x.RefMin
	}
	return 0
}

func (x *TestRow) GetRefMax() float64 {
	if x != nil {
		return x.RefMax
	}
	return 0
}

func (x *TestRow) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *TestRow) GetNote() *RowNote {
	if x != nil {
		return x.Note
	}
	return nil
}

type LabResult struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	PanelType     string                 `protobuf:"bytes,3,opt,name=panel_type,json=panelType,proto3" json:"panel_type,omitempty"`
	ReportDate    string                 `protobuf:"bytes,4,opt,name=report_date,json=reportDate,proto3" json:"report_date,omitempty"` // YYYY-MM-DD
	Rows          []*TestRow             `protobuf:"bytes,5,rep,name=rows,proto3" json:"rows,omitempty"`
	Summary       string                 `protobuf:"bytes,6,opt,name=summary,proto3" json:"summary,omitempty"`
	DoctorNotes   string                 `protobuf:"bytes,7,opt,name=doctor_notes,json=doctorNotes,proto3" json:"doctor_notes,omitempty"`
	TotalTests    int32                  `protobuf:"varint,8,opt,name=total_tests,json=totalTests,proto3" json:"total_tests,omitempty"`
	NormalCount   int32                  `protobuf:"varint,9,opt,name=normal_count,json=normalCount,proto3" json:"normal_count,omitempty"`
	AbnormalCount int32                  `protobuf:"varint,10,opt,name=abnormal_count,json=abnormalCount,proto3" json:"abnormal_count,omitempty"`
	CriticalCount int32                  `protobuf:"varint,11,opt,name=critical_count,json=criticalCount,proto3" json:"critical_count,omitempty"`
	OverallStatus string                 `protobuf:"bytes,12,opt,name=overall_status,json=overallStatus,proto3" json:"overall_status,omitempty"` // normal | abnormal | critical
	CreatedAt     string                 `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	AbnormalRows  []*TestRow             `protobuf:"bytes,14,rep,name=abnormal_rows,json=abnormalRows,proto3" json:"abnormal_rows,omitempty"`
	CriticalRows  []*TestRow             `protobuf:"bytes,15,rep,name=critical_rows,json=criticalRows,proto3" json:"critical_rows,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LabResult) Reset() {
	*x = LabResult{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LabResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LabResult) ProtoMessage() {}

func (x *LabResult) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LabResult.ProtoReflect.Descriptor instead.
func (*LabResult) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{5}
}

func (x *LabResult) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *LabResult) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *LabResult) GetPanelType() string {
	if x != nil {
		return x.PanelType
	}
	return ""
}

func (x *LabResult) GetReportDate() string {
	if x != nil {
		return x.ReportDate
	}
	return ""
}

func (x *LabResult) GetRows() []*TestRow {
	if x != nil {
		return x.Rows
	}
	return nil
}

func (x *LabResult) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

func (x *LabResult) GetDoctorNotes() string {
	if x != nil {
		return x.DoctorNotes
	}
	return ""
}

func (x *LabResult) GetTotalTests() int32 {
	if x != nil {
		return x.TotalTests
	}
	return 0
}

func (x *LabResult) GetNormalCount() int32 {
	if x != nil {
		return x.NormalCount
	}
	return 0
}

func (x *LabResult) GetAbnormalCount() int32 {
	if x != nil {
		return x.AbnormalCount
	}
	return 0
}

func (x *LabResult) GetCriticalCount() int32 {
	if x != nil {
		return x.CriticalCount
	}
	return 0
}

func (x *LabResult) GetOverallStatus() string {
	if x != nil {
		return x.OverallStatus
	}
	return ""
}

func (x *LabResult) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *LabResult) GetAbnormalRows() []*TestRow {
	if x != nil {
		return x.AbnormalRows
	}
	return nil
}

func (x *LabResult) GetCriticalRows() []*TestRow {
	if x != nil {
		return x.CriticalRows
	}
	return nil
}

type CreateProfileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProfileRequest) Reset() {
	*x = CreateProfileRequest{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileRequest) ProtoMessage() {}

func (x *CreateProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileRequest.ProtoReflect.Descriptor instead.
func (*CreateProfileRequest) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{6}
}

func (x *CreateProfileRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type CreateProfileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profile       *Profile               `protobuf:"bytes,1,opt,name=profile,proto3" json:"profile,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProfileResponse) Reset() {
	*x = CreateProfileResponse{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileResponse) ProtoMessage() {}

func (x *CreateProfileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileResponse.ProtoReflect.Descriptor instead.
func (*CreateProfileResponse) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{7}
}

func (x *CreateProfileResponse) GetProfile() *Profile {
	if x != nil {
		return x.Profile
	}
	return nil
}

type ListProfilesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProfilesRequest) Reset() {
	*x = ListProfilesRequest{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProfilesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProfilesRequest) ProtoMessage() {}

func (x *ListProfilesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProfilesRequest.ProtoReflect.Descriptor instead.
func (*ListProfilesRequest) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{8}
}

type ListProfilesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profiles      []*Profile             `protobuf:"bytes,1,rep,name=profiles,proto3" json:"profiles,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProfilesResponse) Reset() {
	*x = ListProfilesResponse{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProfilesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProfilesResponse) ProtoMessage() {}

func (x *ListProfilesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProfilesResponse.ProtoReflect.Descriptor instead.
func (*ListProfilesResponse) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{9}
}

func (x *ListProfilesResponse) GetProfiles() []*Profile {
	if x != nil {
		return x.Profiles
	}
	return nil
}

type UploadReportFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	ReportText    string                 `protobuf:"bytes,3,opt,name=report_text,json=reportText,proto3" json:"report_text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadReportFileRequest) Reset() {
	*x = UploadReportFileRequest{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadReportFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadReportFileRequest) ProtoMessage() {}

func (x *UploadReportFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadReportFileRequest.ProtoReflect.Descriptor instead.
func (*UploadReportFileRequest) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{10}
}

func (x *UploadReportFileRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *UploadReportFileRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadReportFileRequest) GetReportText() string {
	if x != nil {
		return x.ReportText
	}
	return ""
}

type UploadReportFileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	File          *ReportFile            `protobuf:"bytes,1,opt,name=file,proto3" json:"file,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadReportFileResponse) Reset() {
	*x = UploadReportFileResponse{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadReportFileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadReportFileResponse) ProtoMessage() {}

func (x *UploadReportFileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadReportFileResponse.ProtoReflect.Descriptor instead.
func (*UploadReportFileResponse) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{11}
}

func (x *UploadReportFileResponse) GetFile() *ReportFile {
	if x != nil {
		return x.File
	}
	return nil
}

type ListReportFilesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReportFilesRequest) Reset() {
	*x = ListReportFilesRequest{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReportFilesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReportFilesRequest) ProtoMessage() {}

func (x *ListReportFilesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReportFilesRequest.ProtoReflect.Descriptor instead.
func (*ListReportFilesRequest) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{12}
}

func (x *ListReportFilesRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

type ListReportFilesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Files         []*ReportFile          `protobuf:"bytes,1,rep,name=files,proto3" json:"files,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReportFilesResponse) Reset() {
	*x = ListReportFilesResponse{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReportFilesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReportFilesResponse) ProtoMessage() {}

func (x *ListReportFilesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReportFilesResponse.ProtoReflect.Descriptor instead.
func (*ListReportFilesResponse) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{13}
}

func (x *ListReportFilesResponse) GetFiles() []*ReportFile {
	if x != nil {
		return x.Files
	}
	return nil
}

type CreateAnalysisJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileId        string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	ProfileId     string                 `protobuf:"bytes,2,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateAnalysisJobRequest) Reset() {
	*x = CreateAnalysisJobRequest{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateAnalysisJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateAnalysisJobRequest) ProtoMessage() {}

func (x *CreateAnalysisJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateAnalysisJobRequest.ProtoReflect.Descriptor instead.
func (*CreateAnalysisJobRequest) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{14}
}

func (x *CreateAnalysisJobRequest) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *CreateAnalysisJobRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

type CreateAnalysisJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *AnalysisJob           `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateAnalysisJobResponse) Reset() {
	*x = CreateAnalysisJobResponse{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateAnalysisJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateAnalysisJobResponse) ProtoMessage() {}

func (x *CreateAnalysisJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateAnalysisJobResponse.ProtoReflect.Descriptor instead.
func (*CreateAnalysisJobResponse) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{15}
}

func (x *CreateAnalysisJobResponse) GetJob() *AnalysisJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type GetJobStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	ProfileId     string                 `protobuf:"bytes,2,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobStatusRequest) Reset() {
	*x = GetJobStatusRequest{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobStatusRequest) ProtoMessage() {}

func (x *GetJobStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobStatusRequest.ProtoReflect.Descriptor instead.
func (*GetJobStatusRequest) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{16}
}

func (x *GetJobStatusRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *GetJobStatusRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

type GetJobStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *AnalysisJob           `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobStatusResponse) Reset() {
	*x = GetJobStatusResponse{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobStatusResponse) ProtoMessage() {}

func (x *GetJobStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobStatusResponse.ProtoReflect.Descriptor instead.
func (*GetJobStatusResponse) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{17}
}

func (x *GetJobStatusResponse) GetJob() *AnalysisJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type CancelJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	ProfileId     string                 `protobuf:"bytes,2,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobRequest) Reset() {
	*x = CancelJobRequest{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobRequest) ProtoMessage() {}

func (x *CancelJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobRequest.ProtoReflect.Descriptor instead.
func (*CancelJobRequest) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{18}
}

func (x *CancelJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *CancelJobRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

type CancelJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *AnalysisJob           `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobResponse) Reset() {
	*x = CancelJobResponse{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobResponse) ProtoMessage() {}

func (x *CancelJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobResponse.ProtoReflect.Descriptor instead.
func (*CancelJobResponse) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{19}
}

func (x *CancelJobResponse) GetJob() *AnalysisJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type GetResultRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ResultId      string                 `protobuf:"bytes,1,opt,name=result_id,json=resultId,proto3" json:"result_id,omitempty"`
	ProfileId     string                 `protobuf:"bytes,2,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetResultRequest) Reset() {
	*x = GetResultRequest{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetResultRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetResultRequest) ProtoMessage() {}

func (x *GetResultRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetResultRequest.ProtoReflect.Descriptor instead.
func (*GetResultRequest) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{20}
}

func (x *GetResultRequest) GetResultId() string {
	if x != nil {
		return x.ResultId
	}
	return ""
}

func (x *GetResultRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

type GetResultResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Result        *LabResult             `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetResultResponse) Reset() {
	*x = GetResultResponse{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetResultResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetResultResponse) ProtoMessage() {}

func (x *GetResultResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetResultResponse.ProtoReflect.Descriptor instead.
func (*GetResultResponse) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{21}
}

func (x *GetResultResponse) GetResult() *LabResult {
	if x != nil {
		return x.Result
	}
	return nil
}

type ExportResultXlsxRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ResultId      string                 `protobuf:"bytes,1,opt,name=result_id,json=resultId,proto3" json:"result_id,omitempty"`
	ProfileId     string                 `protobuf:"bytes,2,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportResultXlsxRequest) Reset() {
	*x = ExportResultXlsxRequest{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportResultXlsxRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportResultXlsxRequest) ProtoMessage() {}

func (x *ExportResultXlsxRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportResultXlsxRequest.ProtoReflect.Descriptor instead.
func (*ExportResultXlsxRequest) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{22}
}

func (x *ExportResultXlsxRequest) GetResultId() string {
	if x != nil {
		return x.ResultId
	}
	return ""
}

func (x *ExportResultXlsxRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

type ExportResultXlsxResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportResultXlsxResponse) Reset() {
	*x = ExportResultXlsxResponse{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportResultXlsxResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportResultXlsxResponse) ProtoMessage() {}

func (x *ExportResultXlsxResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportResultXlsxResponse.ProtoReflect.Descriptor instead.
func (*ExportResultXlsxResponse) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{23}
}

func (x *ExportResultXlsxResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_labreports_v1_labreports_proto protoreflect.FileDescriptor

const file_labreports_v1_labreports_proto_rawDesc = "" +
	"\n" +
	"\x1elabreports/v1/labreports.proto\x12\rlabreports.v1\"k\n" +
	"\aProfile\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1d\n" +
	"\n" +
	"created_at\x18\x03 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x04 \x01(\tR\tupdatedAt\"x\n" +
	"\n" +
	"ReportFile\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x02 \x01(\tR\tprofileId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12\x1f\n" +
	"\vuploaded_at\x18\x04 \x01(\tR\n" +
	"uploadedAt\"\x89\x02\n" +
	"\vAnalysisJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\afile_id\x18\x02 \x01(\tR\x06fileId\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x03 \x01(\tR\tprofileId\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x1a\n" +
	"\bprogress\x18\x05 \x01(\x05R\bprogress\x12\x1b\n" +
	"\tresult_id\x18\x06 \x01(\tR\bresultId\x12#\n" +
	"\rerror_message\x18\a \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\t \x01(\tR\tupdatedAt\"t\n" +
	"\aRowNote\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12\x1e\n" +
	"\n" +
	"confidence\x18\x02 \x01(\x02R\n" +
	"confidence\x12\x16\n" +
	"\x06source\x18\x03 \x01(\tR\x06source\x12\x1d\n" +
	"\n" +
	"created_at\x18\x04 \x01(\tR\tcreatedAt\"\xcd\x01\n" +
	"\aTestRow\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x14\n" +
	"\x05value\x18\x03 \x01(\x01R\x05value\x12\x12\n" +
	"\x04unit\x18\x04 \x01(\tR\x04unit\x12\x17\n" +
	"\aref_min\x18\x05 \x01(\x01R\x06refMin\x12\x17\n" +
	"\aref_max\x18\x06 \x01(\x01R\x06refMax\x12\x16\n" +
	"\x06status\x18\a \x01(\tR\x06status\x12*\n" +
	"\x04note\x18\b \x01(\v2\x16.labreports.v1.RowNoteR\x04note\"\xad\x04\n" +
	"\tLabResult\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12\x1d\n" +
	"\n" +
	"panel_type\x18\x03 \x01(\tR\tpanelType\x12\x1f\n" +
	"\vreport_date\x18\x04 \x01(\tR\n" +
	"reportDate\x12*\n" +
	"\x04rows\x18\x05 \x03(\v2\x16.labreports.v1.TestRowR\x04rows\x12\x18\n" +
	"\asummary\x18\x06 \x01(\tR\asummary\x12!\n" +
	"\fdoctor_notes\x18\a \x01(\tR\vdoctorNotes\x12\x1f\n" +
	"\vtotal_tests\x18\b \x01(\x05R\n" +
	"totalTests\x12!\n" +
	"\fnormal_count\x18\t \x01(\x05R\vnormalCount\x12%\n" +
	"\x0eabnormal_count\x18\n" +
	" \x01(\x05R\rabnormalCount\x12%\n" +
	"\x0ecritical_count\x18\v \x01(\x05R\rcriticalCount\x12%\n" +
	"\x0eoverall_status\x18\f \x01(\tR\roverallStatus\x12\x1d\n" +
	"\n" +
	"created_at\x18\r \x01(\tR\tcreatedAt\x12;\n" +
	"\rabnormal_rows\x18\x0e \x03(\v2\x16.labreports.v1.TestRowR\fabnormalRows\x12;\n" +
	"\rcritical_rows\x18\x0f \x03(\v2\x16.labreports.v1.TestRowR\fcriticalRows\"*\n" +
	"\x14CreateProfileRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\"I\n" +
	"\x15CreateProfileResponse\x120\n" +
	"\aprofile\x18\x01 \x01(\v2\x16.labreports.v1.ProfileR\aprofile\"\x15\n" +
	"\x13ListProfilesRequest\"J\n" +
	"\x14ListProfilesResponse\x122\n" +
	"\bprofiles\x18\x01 \x03(\v2\x16.labreports.v1.ProfileR\bprofiles\"u\n" +
	"\x17UploadReportFileRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x1f\n" +
	"\vreport_text\x18\x03 \x01(\tR\n" +
	"reportText\"I\n" +
	"\x18UploadReportFileResponse\x12-\n" +
	"\x04file\x18\x01 \x01(\v2\x19.labreports.v1.ReportFileR\x04file\"7\n" +
	"\x16ListReportFilesRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\"J\n" +
	"\x17ListReportFilesResponse\x12/\n" +
	"\x05files\x18\x01 \x03(\v2\x19.labreports.v1.ReportFileR\x05files\"R\n" +
	"\x18CreateAnalysisJobRequest\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x02 \x01(\tR\tprofileId\"I\n" +
	"\x19CreateAnalysisJobResponse\x12,\n" +
	"\x03job\x18\x01 \x01(\v2\x1a.labreports.v1.AnalysisJobR\x03job\"K\n" +
	"\x13GetJobStatusRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x02 \x01(\tR\tprofileId\"D\n" +
	"\x14GetJobStatusResponse\x12,\n" +
	"\x03job\x18\x01 \x01(\v2\x1a.labreports.v1.AnalysisJobR\x03job\"H\n" +
	"\x10CancelJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x02 \x01(\tR\tprofileId\"A\n" +
	"\x11CancelJobResponse\x12,\n" +
	"\x03job\x18\x01 \x01(\v2\x1a.labreports.v1.AnalysisJobR\x03job\"N\n" +
	"\x10GetResultRequest\x12\x1b\n" +
	"\tresult_id\x18\x01 \x01(\tR\bresultId\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x02 \x01(\tR\tprofileId\"E\n" +
	"\x11GetResultResponse\x120\n" +
	"\x06result\x18\x01 \x01(\v2\x18.labreports.v1.LabResultR\x06result\"U\n" +
	"\x17ExportResultXlsxRequest\x12\x1b\n" +
	"\tresult_id\x18\x01 \x01(\tR\bresultId\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x02 \x01(\tR\tprofileId\".\n" +
	"\x18ExportResultXlsxResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xc6\x01\n" +
	"\x0fProfilesService\x12Z\n" +
	"\rCreateProfile\x12#.labreports.v1.CreateProfileRequest\x1a$.labreports.v1.CreateProfileResponse\x12W\n" +
	"\fListProfiles\x12\".labreports.v1.ListProfilesRequest\x1a#.labreports.v1.ListProfilesResponse2\xd5\x01\n" +
	"\fFilesService\x12c\n" +
	"\x10UploadReportFile\x12&.labreports.v1.UploadReportFileRequest\x1a'.labreports.v1.UploadReportFileResponse\x12`\n" +
	"\x0fListReportFiles\x12%.labreports.v1.ListReportFilesRequest\x1a&.labreports.v1.ListReportFilesResponse2\x9e\x02\n" +
	"\vJobsService\x12f\n" +
	"\x11CreateAnalysisJob\x12'.labreports.v1.CreateAnalysisJobRequest\x1a(.labreports.v1.CreateAnalysisJobResponse\x12W\n" +
	"\fGetJobStatus\x12\".labreports.v1.GetJobStatusRequest\x1a#.labreports.v1.GetJobStatusResponse\x12N\n" +
	"\tCancelJob\x12\x1f.labreports.v1.CancelJobRequest\x1a .labreports.v1.CancelJobResponse2\xc5\x01\n" +
	"\x0eResultsService\x12N\n" +
	"\tGetResult\x12\x1f.labreports.v1.GetResultRequest\x1a .labreports.v1.GetResultResponse\x12c\n" +
	"\x10ExportResultXlsx\x12&.labreports.v1.ExportResultXlsxRequest\x1a'.labreports.v1.ExportResultXlsxResponseBSZQgithub.com/joseph-ayodele/labreports-tracker/gen/proto/labreports/v1;labreportsv1b\x06proto3"

var (
	file_labreports_v1_labreports_proto_rawDescOnce sync.Once
	file_labreports_v1_labreports_proto_rawDescData []byte
)

func file_labreports_v1_labreports_proto_rawDescGZIP() []byte {
	file_labreports_v1_labreports_proto_rawDescOnce.Do(func() {
		file_labreports_v1_labreports_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_labreports_v1_labreports_proto_rawDesc), len(file_labreports_v1_labreports_proto_rawDesc)))
	})
	return file_labreports_v1_labreports_proto_rawDescData
}

var file_labreports_v1_labreports_proto_msgTypes = make([]protoimpl.MessageInfo, 24)
var file_labreports_v1_labreports_proto_goTypes = []any{
	(*Profile)(nil),                   // 0: labreports.v1.Profile
	(*ReportFile)(nil),                // 1: labreports.v1.ReportFile
	(*AnalysisJob)(nil),               // 2: labreports.v1.AnalysisJob
	(*RowNote)(nil),                   // 3: labreports.v1.RowNote
	(*TestRow)(nil),                   // 4: labreports.v1.TestRow
	(*LabResult)(nil),                 // 5: labreports.v1.LabResult
	(*CreateProfileRequest)(nil),      // 6: labreports.v1.CreateProfileRequest
	(*CreateProfileResponse)(nil),     // 7: labreports.v1.CreateProfileResponse
	(*ListProfilesRequest)(nil),       // 8: labreports.v1.ListProfilesRequest
	(*ListProfilesResponse)(nil),      // 9: labreports.v1.ListProfilesResponse
	(*UploadReportFileRequest)(nil),   // 10: labreports.v1.UploadReportFileRequest
	(*UploadReportFileResponse)(nil),  // 11: labreports.v1.UploadReportFileResponse
	(*ListReportFilesRequest)(nil),    // 12: labreports.v1.ListReportFilesRequest
	(*ListReportFilesResponse)(nil),   // 13: labreports.v1.ListReportFilesResponse
	(*CreateAnalysisJobRequest)(nil),  // 14: labreports.v1.CreateAnalysisJobRequest
	(*CreateAnalysisJobResponse)(nil), // 15: labreports.v1.CreateAnalysisJobResponse
	(*GetJobStatusRequest)(nil),       // 16: labreports.v1.GetJobStatusRequest
	(*GetJobStatusResponse)(nil),      // 17: labreports.v1.GetJobStatusResponse
	(*CancelJobRequest)(nil),          // 18: labreports.v1.CancelJobRequest
	(*CancelJobResponse)(nil),         // 19: labreports.v1.CancelJobResponse
	(*GetResultRequest)(nil),          // 20: labreports.v1.GetResultRequest
	(*GetResultResponse)(nil),         // 21: labreports.v1.GetResultResponse
	(*ExportResultXlsxRequest)(nil),   // 22: labreports.v1.ExportResultXlsxRequest
	(*ExportResultXlsxResponse)(nil),  // 23: labreports.v1.ExportResultXlsxResponse
}
var file_labreports_v1_labreports_proto_depIdxs = []int32{
	3,  // 0: labreports.v1.TestRow.note:type_name -> labreports.v1.RowNote
	4,  // 1: labreports.v1.LabResult.rows:type_name -> labreports.v1.TestRow
	4,  // 2: labreports.v1.LabResult.abnormal_rows:type_name -> labreports.v1.TestRow
	4,  // 3: labreports.v1.LabResult.critical_rows:type_name -> labreports.v1.TestRow
	0,  // 4: labreports.v1.CreateProfileResponse.profile:type_name -> labreports.v1.Profile
	0,  // 5: labreports.v1.ListProfilesResponse.profiles:type_name -> labreports.v1.Profile
	1,  // 6: labreports.v1.UploadReportFileResponse.file:type_name -> labreports.v1.ReportFile
	1,  // 7: labreports.v1.ListReportFilesResponse.files:type_name -> labreports.v1.ReportFile
	2,  // 8: labreports.v1.CreateAnalysisJobResponse.job:type_name -> labreports.v1.AnalysisJob
	2,  // 9: labreports.v1.GetJobStatusResponse.job:type_name -> labreports.v1.AnalysisJob
	2,  // 10: labreports.v1.CancelJobResponse.job:type_name -> labreports.v1.AnalysisJob
	5,  // 11: labreports.v1.GetResultResponse.result:type_name -> labreports.v1.LabResult
	6,  // 12: labreports.v1.ProfilesService.CreateProfile:input_type -> labreports.v1.CreateProfileRequest
	8,  // 13: labreports.v1.ProfilesService.ListProfiles:input_type -> labreports.v1.ListProfilesRequest
	10, // 14: labreports.v1.FilesService.UploadReportFile:input_type -> labreports.v1.UploadReportFileRequest
	12, // 15: labreports.v1.FilesService.ListReportFiles:input_type -> labreports.v1.ListReportFilesRequest
	14, // 16: labreports.v1.JobsService.CreateAnalysisJob:input_type -> labreports.v1.CreateAnalysisJobRequest
	16, // 17: labreports.v1.JobsService.GetJobStatus:input_type -> labreports.v1.GetJobStatusRequest
	18, // 18: labreports.v1.JobsService.CancelJob:input_type -> labreports.v1.CancelJobRequest
	20, // 19: labreports.v1.ResultsService.GetResult:input_type -> labreports.v1.GetResultRequest
	22, // 20: labreports.v1.ResultsService.ExportResultXlsx:input_type -> labreports.v1.ExportResultXlsxRequest
	7,  // 21: labreports.v1.ProfilesService.CreateProfile:output_type -> labreports.v1.CreateProfileResponse
	9,  // 22: labreports.v1.ProfilesService.ListProfiles:output_type -> labreports.v1.ListProfilesResponse
	11, // 23: labreports.v1.FilesService.UploadReportFile:output_type -> labreports.v1.UploadReportFileResponse
	13, // 24: labreports.v1.FilesService.ListReportFiles:output_type -> labreports.v1.ListReportFilesResponse
	15, // 25: labreports.v1.JobsService.CreateAnalysisJob:output_type -> labreports.v1.CreateAnalysisJobResponse
	17, // 26: labreports.v1.JobsService.GetJobStatus:output_type -> labreports.v1.GetJobStatusResponse
	19, // 27: labreports.v1.JobsService.CancelJob:output_type -> labreports.v1.CancelJobResponse
	21, // 28: labreports.v1.ResultsService.GetResult:output_type -> labreports.v1.GetResultResponse
	23, // 29: labreports.v1.ResultsService.ExportResultXlsx:output_type -> labreports.v1.ExportResultXlsxResponse
	21, // [21:30] is the sub-list for method output_type
	12, // [12:21] is the sub-list for method input_type
	12, // [12:12] is the sub-list for extension type_name
	12, // [12:12] is the sub-list for extension extendee
	0,  // [0:12] is the sub-list for field type_name
}

func init() { file_labreports_v1_labreports_proto_init() }
func file_labreports_v1_labreports_proto_init() {
	if File_labreports_v1_labreports_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_labreports_v1_labreports_proto_rawDesc), len(file_labreports_v1_labreports_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   24,
			NumExtensions: 0,
			NumServices:   4,
		},
		GoTypes:           file_labreports_v1_labreports_proto_goTypes,
		DependencyIndexes: file_labreports_v1_labreports_proto_depIdxs,
		MessageInfos:      file_labreports_v1_labreports_proto_msgTypes,
	}.Build()
	File_labreports_v1_labreports_proto = out.File
	file_labreports_v1_labreports_proto_goTypes = nil
	file_labreports_v1_labreports_proto_depIdxs = nil
}
