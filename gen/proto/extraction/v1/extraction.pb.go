// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: extraction/v1/extraction.proto

package extractionv1

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

// ImageInput mirrors the provider-neutral image payload: either a URL or
// base64 data plus its media type.
type ImageInput struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SourceType    string                 `protobuf:"bytes,1,opt,name=source_type,json=sourceType,proto3" json:"source_type,omitempty"` // "url" or "base64"
	Data          string                 `protobuf:"bytes,2,opt,name=data,proto3" json:"data,omitempty"`
	MediaType     string                 `protobuf:"bytes,3,opt,name=media_type,json=mediaType,proto3" json:"media_type,omitempty"` // required for base64
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImageInput) Reset() {
	*x = ImageInput{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImageInput) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImageInput) ProtoMessage() {}

func (x *ImageInput) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImageInput.ProtoReflect.Descriptor instead.
func (*ImageInput) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{0}
}

func (x *ImageInput) GetSourceType() string {
	if x != nil {
		return x.SourceType
	}
	return ""
}

func (x *ImageInput) GetData() string {
	if x != nil {
		return x.Data
	}
	return ""
}

func (x *ImageInput) GetMediaType() string {
	if x != nil {
		return x.MediaType
	}
	return ""
}

type ValidationIssue struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Code          string                 `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	FieldPath     string                 `protobuf:"bytes,3,opt,name=field_path,json=fieldPath,proto3" json:"field_path,omitempty"`
	Severity      string                 `protobuf:"bytes,4,opt,name=severity,proto3" json:"severity,omitempty"` // "error" or "warning"
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidationIssue) Reset() {
	*x = ValidationIssue{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidationIssue) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidationIssue) ProtoMessage() {}

func (x *ValidationIssue) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidationIssue.ProtoReflect.Descriptor instead.
func (*ValidationIssue) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{1}
}

func (x *ValidationIssue) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *ValidationIssue) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *ValidationIssue) GetFieldPath() string {
	if x != nil {
		return x.FieldPath
	}
	return ""
}

func (x *ValidationIssue) GetSeverity() string {
	if x != nil {
		return x.Severity
	}
	return ""
}

// ExtractionResult carries the decoded payload as JSON so the review UI can
// render and edit it without a schema round-trip.
type ExtractionResult struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Success          bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	DataJson         string                 `protobuf:"bytes,2,opt,name=data_json,json=dataJson,proto3" json:"data_json,omitempty"`
	Issues           []*ValidationIssue     `protobuf:"bytes,3,rep,name=issues,proto3" json:"issues,omitempty"`
	Raw              string                 `protobuf:"bytes,4,opt,name=raw,proto3" json:"raw,omitempty"`
	ProcessingTimeMs int64                  `protobuf:"varint,5,opt,name=processing_time_ms,json=processingTimeMs,proto3" json:"processing_time_ms,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ExtractionResult) Reset() {
	*x = ExtractionResult{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractionResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractionResult) ProtoMessage() {}

func (x *ExtractionResult) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractionResult.ProtoReflect.Descriptor instead.
func (*ExtractionResult) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{2}
}

func (x *ExtractionResult) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *ExtractionResult) GetDataJson() string {
	if x != nil {
		return x.DataJson
	}
	return ""
}

func (x *ExtractionResult) GetIssues() []*ValidationIssue {
	if x != nil {
		return x.Issues
	}
	return nil
}

func (x *ExtractionResult) GetRaw() string {
	if x != nil {
		return x.Raw
	}
	return ""
}

func (x *ExtractionResult) GetProcessingTimeMs() int64 {
	if x != nil {
		return x.ProcessingTimeMs
	}
	return 0
}

type ExtractScorebookRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Image         *ImageInput            `protobuf:"bytes,1,opt,name=image,proto3" json:"image,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractScorebookRequest) Reset() {
	*x = ExtractScorebookRequest{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractScorebookRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractScorebookRequest) ProtoMessage() {}

func (x *ExtractScorebookRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractScorebookRequest.ProtoReflect.Descriptor instead.
func (*ExtractScorebookRequest) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{3}
}

func (x *ExtractScorebookRequest) GetImage() *ImageInput {
	if x != nil {
		return x.Image
	}
	return nil
}

type ExtractRosterRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Image         *ImageInput            `protobuf:"bytes,1,opt,name=image,proto3" json:"image,omitempty"`
	Sport         string                 `protobuf:"bytes,2,opt,name=sport,proto3" json:"sport,omitempty"`   // optional override
	Gender        string                 `protobuf:"bytes,3,opt,name=gender,proto3" json:"gender,omitempty"` // optional override
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractRosterRequest) Reset() {
	*x = ExtractRosterRequest{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractRosterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractRosterRequest) ProtoMessage() {}

func (x *ExtractRosterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractRosterRequest.ProtoReflect.Descriptor instead.
func (*ExtractRosterRequest) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{4}
}

func (x *ExtractRosterRequest) GetImage() *ImageInput {
	if x != nil {
		return x.Image
	}
	return nil
}

func (x *ExtractRosterRequest) GetSport() string {
	if x != nil {
		return x.Sport
	}
	return ""
}

func (x *ExtractRosterRequest) GetGender() string {
	if x != nil {
		return x.Gender
	}
	return ""
}

type ExtractScheduleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Image         *ImageInput            `protobuf:"bytes,1,opt,name=image,proto3" json:"image,omitempty"`
	Sport         string                 `protobuf:"bytes,2,opt,name=sport,proto3" json:"sport,omitempty"`
	Gender        string                 `protobuf:"bytes,3,opt,name=gender,proto3" json:"gender,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractScheduleRequest) Reset() {
	*x = ExtractScheduleRequest{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractScheduleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractScheduleRequest) ProtoMessage() {}

func (x *ExtractScheduleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractScheduleRequest.ProtoReflect.Descriptor instead.
func (*ExtractScheduleRequest) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{5}
}

func (x *ExtractScheduleRequest) GetImage() *ImageInput {
	if x != nil {
		return x.Image
	}
	return nil
}

func (x *ExtractScheduleRequest) GetSport() string {
	if x != nil {
		return x.Sport
	}
	return ""
}

func (x *ExtractScheduleRequest) GetGender() string {
	if x != nil {
		return x.Gender
	}
	return ""
}

type ExtractResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Result        *ExtractionResult      `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractResponse) Reset() {
	*x = ExtractResponse{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractResponse) ProtoMessage() {}

func (x *ExtractResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractResponse.ProtoReflect.Descriptor instead.
func (*ExtractResponse) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{6}
}

func (x *ExtractResponse) GetResult() *ExtractionResult {
	if x != nil {
		return x.Result
	}
	return nil
}

type School struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Key            string                 `protobuf:"bytes,2,opt,name=key,proto3" json:"key,omitempty"`
	Name           string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	City           string                 `protobuf:"bytes,4,opt,name=city,proto3" json:"city,omitempty"`
	Classification string                 `protobuf:"bytes,5,opt,name=classification,proto3" json:"classification,omitempty"`
	Conference     string                 `protobuf:"bytes,6,opt,name=conference,proto3" json:"conference,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt      string                 `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *School) Reset() {
	*x = School{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *School) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*School) ProtoMessage() {}

func (x *School) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use School.ProtoReflect.Descriptor instead.
func (*School) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{7}
}

func (x *School) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *School) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *School) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *School) GetCity() string {
	if x != nil {
		return x.City
	}
	return ""
}

func (x *School) GetClassification() string {
	if x != nil {
		return x.Classification
	}
	return ""
}

func (x *School) GetConference() string {
	if x != nil {
		return x.Conference
	}
	return ""
}

func (x *School) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *School) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ResolveSchoolRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Name           string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	City           string                 `protobuf:"bytes,2,opt,name=city,proto3" json:"city,omitempty"`
	Classification string                 `protobuf:"bytes,3,opt,name=classification,proto3" json:"classification,omitempty"`
	Conference     string                 `protobuf:"bytes,4,opt,name=conference,proto3" json:"conference,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ResolveSchoolRequest) Reset() {
	*x = ResolveSchoolRequest{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveSchoolRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveSchoolRequest) ProtoMessage() {}

func (x *ResolveSchoolRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveSchoolRequest.ProtoReflect.Descriptor instead.
func (*ResolveSchoolRequest) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{8}
}

func (x *ResolveSchoolRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ResolveSchoolRequest) GetCity() string {
	if x != nil {
		return x.City
	}
	return ""
}

func (x *ResolveSchoolRequest) GetClassification() string {
	if x != nil {
		return x.Classification
	}
	return ""
}

func (x *ResolveSchoolRequest) GetConference() string {
	if x != nil {
		return x.Conference
	}
	return ""
}

type ResolveSchoolResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Created       bool                   `protobuf:"varint,3,opt,name=created,proto3" json:"created,omitempty"`
	Method        string                 `protobuf:"bytes,4,opt,name=method,proto3" json:"method,omitempty"`                           // "exact", "alias", "normalized", "created"
	AliasAdded    string                 `protobuf:"bytes,5,opt,name=alias_added,json=aliasAdded,proto3" json:"alias_added,omitempty"` // spelling recorded as a new alias, empty if none
	Suggestions   []string               `protobuf:"bytes,6,rep,name=suggestions,proto3" json:"suggestions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolveSchoolResponse) Reset() {
	*x = ResolveSchoolResponse{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveSchoolResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveSchoolResponse) ProtoMessage() {}

func (x *ResolveSchoolResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveSchoolResponse.ProtoReflect.Descriptor instead.
func (*ResolveSchoolResponse) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{9}
}

func (x *ResolveSchoolResponse) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ResolveSchoolResponse) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ResolveSchoolResponse) GetCreated() bool {
	if x != nil {
		return x.Created
	}
	return false
}

func (x *ResolveSchoolResponse) GetMethod() string {
	if x != nil {
		return x.Method
	}
	return ""
}

func (x *ResolveSchoolResponse) GetAliasAdded() string {
	if x != nil {
		return x.AliasAdded
	}
	return ""
}

func (x *ResolveSchoolResponse) GetSuggestions() []string {
	if x != nil {
		return x.Suggestions
	}
	return nil
}

type ListSchoolsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSchoolsRequest) Reset() {
	*x = ListSchoolsRequest{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSchoolsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSchoolsRequest) ProtoMessage() {}

func (x *ListSchoolsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSchoolsRequest.ProtoReflect.Descriptor instead.
func (*ListSchoolsRequest) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{10}
}

type ListSchoolsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Schools       []*School              `protobuf:"bytes,1,rep,name=schools,proto3" json:"schools,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSchoolsResponse) Reset() {
	*x = ListSchoolsResponse{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSchoolsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSchoolsResponse) ProtoMessage() {}

func (x *ListSchoolsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSchoolsResponse.ProtoReflect.Descriptor instead.
func (*ListSchoolsResponse) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{11}
}

func (x *ListSchoolsResponse) GetSchools() []*School {
	if x != nil {
		return x.Schools
	}
	return nil
}

type AddAliasRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SchoolId      string                 `protobuf:"bytes,1,opt,name=school_id,json=schoolId,proto3" json:"school_id,omitempty"`
	Alias         string                 `protobuf:"bytes,2,opt,name=alias,proto3" json:"alias,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddAliasRequest) Reset() {
	*x = AddAliasRequest{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddAliasRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddAliasRequest) ProtoMessage() {}

func (x *AddAliasRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddAliasRequest.ProtoReflect.Descriptor instead.
func (*AddAliasRequest) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{12}
}

func (x *AddAliasRequest) GetSchoolId() string {
	if x != nil {
		return x.SchoolId
	}
	return ""
}

func (x *AddAliasRequest) GetAlias() string {
	if x != nil {
		return x.Alias
	}
	return ""
}

type AddAliasResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddAliasResponse) Reset() {
	*x = AddAliasResponse{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddAliasResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddAliasResponse) ProtoMessage() {}

func (x *AddAliasResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddAliasResponse.ProtoReflect.Descriptor instead.
func (*AddAliasResponse) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{13}
}

// Commit requests carry the reviewer-approved payload back as JSON, matching
// the data_json field the extraction endpoints returned.
type CommitRosterRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RosterJson    string                 `protobuf:"bytes,1,opt,name=roster_json,json=rosterJson,proto3" json:"roster_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommitRosterRequest) Reset() {
	*x = CommitRosterRequest{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommitRosterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommitRosterRequest) ProtoMessage() {}

func (x *CommitRosterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommitRosterRequest.ProtoReflect.Descriptor instead.
func (*CommitRosterRequest) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{14}
}

func (x *CommitRosterRequest) GetRosterJson() string {
	if x != nil {
		return x.RosterJson
	}
	return ""
}

type CommitScheduleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ScheduleJson  string                 `protobuf:"bytes,1,opt,name=schedule_json,json=scheduleJson,proto3" json:"schedule_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommitScheduleRequest) Reset() {
	*x = CommitScheduleRequest{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommitScheduleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommitScheduleRequest) ProtoMessage() {}

func (x *CommitScheduleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommitScheduleRequest.ProtoReflect.Descriptor instead.
func (*CommitScheduleRequest) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{15}
}

func (x *CommitScheduleRequest) GetScheduleJson() string {
	if x != nil {
		return x.ScheduleJson
	}
	return ""
}

type CommitGameRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	GameJson      string                 `protobuf:"bytes,1,opt,name=game_json,json=gameJson,proto3" json:"game_json,omitempty"`
	Gender        string                 `protobuf:"bytes,2,opt,name=gender,proto3" json:"gender,omitempty"`
	Season        string                 `protobuf:"bytes,3,opt,name=season,proto3" json:"season,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommitGameRequest) Reset() {
	*x = CommitGameRequest{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommitGameRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommitGameRequest) ProtoMessage() {}

func (x *CommitGameRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommitGameRequest.ProtoReflect.Descriptor instead.
func (*CommitGameRequest) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{16}
}

func (x *CommitGameRequest) GetGameJson() string {
	if x != nil {
		return x.GameJson
	}
	return ""
}

func (x *CommitGameRequest) GetGender() string {
	if x != nil {
		return x.Gender
	}
	return ""
}

func (x *CommitGameRequest) GetSeason() string {
	if x != nil {
		return x.Season
	}
	return ""
}

type CommitResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SchoolId      string                 `protobuf:"bytes,1,opt,name=school_id,json=schoolId,proto3" json:"school_id,omitempty"`
	SchoolCreated bool                   `protobuf:"varint,2,opt,name=school_created,json=schoolCreated,proto3" json:"school_created,omitempty"`
	Created       int32                  `protobuf:"varint,3,opt,name=created,proto3" json:"created,omitempty"`
	Updated       int32                  `protobuf:"varint,4,opt,name=updated,proto3" json:"updated,omitempty"`
	Skipped       int32                  `protobuf:"varint,5,opt,name=skipped,proto3" json:"skipped,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommitResponse) Reset() {
	*x = CommitResponse{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommitResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommitResponse) ProtoMessage() {}

func (x *CommitResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommitResponse.ProtoReflect.Descriptor instead.
func (*CommitResponse) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{17}
}

func (x *CommitResponse) GetSchoolId() string {
	if x != nil {
		return x.SchoolId
	}
	return ""
}

func (x *CommitResponse) GetSchoolCreated() bool {
	if x != nil {
		return x.SchoolCreated
	}
	return false
}

func (x *CommitResponse) GetCreated() int32 {
	if x != nil {
		return x.Created
	}
	return 0
}

func (x *CommitResponse) GetUpdated() int32 {
	if x != nil {
		return x.Updated
	}
	return 0
}

func (x *CommitResponse) GetSkipped() int32 {
	if x != nil {
		return x.Skipped
	}
	return 0
}

type ExportRosterRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SchoolId      string                 `protobuf:"bytes,1,opt,name=school_id,json=schoolId,proto3" json:"school_id,omitempty"`
	Sport         string                 `protobuf:"bytes,2,opt,name=sport,proto3" json:"sport,omitempty"`
	Gender        string                 `protobuf:"bytes,3,opt,name=gender,proto3" json:"gender,omitempty"`
	Season        string                 `protobuf:"bytes,4,opt,name=season,proto3" json:"season,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportRosterRequest) Reset() {
	*x = ExportRosterRequest{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportRosterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportRosterRequest) ProtoMessage() {}

func (x *ExportRosterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportRosterRequest.ProtoReflect.Descriptor instead.
func (*ExportRosterRequest) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{18}
}

func (x *ExportRosterRequest) GetSchoolId() string {
	if x != nil {
		return x.SchoolId
	}
	return ""
}

func (x *ExportRosterRequest) GetSport() string {
	if x != nil {
		return x.Sport
	}
	return ""
}

func (x *ExportRosterRequest) GetGender() string {
	if x != nil {
		return x.Gender
	}
	return ""
}

func (x *ExportRosterRequest) GetSeason() string {
	if x != nil {
		return x.Season
	}
	return ""
}

type ExportScheduleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SchoolId      string                 `protobuf:"bytes,1,opt,name=school_id,json=schoolId,proto3" json:"school_id,omitempty"`
	Sport         string                 `protobuf:"bytes,2,opt,name=sport,proto3" json:"sport,omitempty"`
	Gender        string                 `protobuf:"bytes,3,opt,name=gender,proto3" json:"gender,omitempty"`
	Season        string                 `protobuf:"bytes,4,opt,name=season,proto3" json:"season,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportScheduleRequest) Reset() {
	*x = ExportScheduleRequest{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportScheduleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportScheduleRequest) ProtoMessage() {}

func (x *ExportScheduleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportScheduleRequest.ProtoReflect.Descriptor instead.
func (*ExportScheduleRequest) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{19}
}

func (x *ExportScheduleRequest) GetSchoolId() string {
	if x != nil {
		return x.SchoolId
	}
	return ""
}

func (x *ExportScheduleRequest) GetSport() string {
	if x != nil {
		return x.Sport
	}
	return ""
}

func (x *ExportScheduleRequest) GetGender() string {
	if x != nil {
		return x.Gender
	}
	return ""
}

func (x *ExportScheduleRequest) GetSeason() string {
	if x != nil {
		return x.Season
	}
	return ""
}

type ExportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportResponse) Reset() {
	*x = ExportResponse{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportResponse) ProtoMessage() {}

func (x *ExportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportResponse.ProtoReflect.Descriptor instead.
func (*ExportResponse) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{20}
}

func (x *ExportResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_extraction_v1_extraction_proto protoreflect.FileDescriptor

const file_extraction_v1_extraction_proto_rawDesc = "" +
	"\n" +
	"\x1eextraction/v1/extraction.proto\x12\rextraction.v1\"`\n" +
	"\n" +
	"ImageInput\x12\x1f\n" +
	"\vsource_type\x18\x01 \x01(\tR\n" +
	"sourceType\x12\x12\n" +
	"\x04data\x18\x02 \x01(\tR\x04data\x12\x1d\n" +
	"\n" +
	"media_type\x18\x03 \x01(\tR\tmediaType\"z\n" +
	"\x0fValidationIssue\x12\x12\n" +
	"\x04code\x18\x01 \x01(\tR\x04code\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\x12\x1d\n" +
	"\n" +
	"field_path\x18\x03 \x01(\tR\tfieldPath\x12\x1a\n" +
	"\bseverity\x18\x04 \x01(\tR\bseverity\"\xc1\x01\n" +
	"\x10ExtractionResult\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x12\x1b\n" +
	"\tdata_json\x18\x02 \x01(\tR\bdataJson\x126\n" +
	"\x06issues\x18\x03 \x03(\v2\x1e.extraction.v1.ValidationIssueR\x06issues\x12\x10\n" +
	"\x03raw\x18\x04 \x01(\tR\x03raw\x12,\n" +
	"\x12processing_time_ms\x18\x05 \x01(\x03R\x10processingTimeMs\"J\n" +
	"\x17ExtractScorebookRequest\x12/\n" +
	"\x05image\x18\x01 \x01(\v2\x19.extraction.v1.ImageInputR\x05image\"u\n" +
	"\x14ExtractRosterRequest\x12/\n" +
	"\x05image\x18\x01 \x01(\v2\x19.extraction.v1.ImageInputR\x05image\x12\x14\n" +
	"\x05sport\x18\x02 \x01(\tR\x05sport\x12\x16\n" +
	"\x06gender\x18\x03 \x01(\tR\x06gender\"w\n" +
	"\x16ExtractScheduleRequest\x12/\n" +
	"\x05image\x18\x01 \x01(\v2\x19.extraction.v1.ImageInputR\x05image\x12\x14\n" +
	"\x05sport\x18\x02 \x01(\tR\x05sport\x12\x16\n" +
	"\x06gender\x18\x03 \x01(\tR\x06gender\"J\n" +
	"\x0fExtractResponse\x127\n" +
	"\x06result\x18\x01 \x01(\v2\x1f.extraction.v1.ExtractionResultR\x06result\"\xd8\x01\n" +
	"\x06School\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x10\n" +
	"\x03key\x18\x02 \x01(\tR\x03key\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x12\n" +
	"\x04city\x18\x04 \x01(\tR\x04city\x12&\n" +
	"\x0eclassification\x18\x05 \x01(\tR\x0eclassification\x12\x1e\n" +
	"\n" +
	"conference\x18\x06 \x01(\tR\n" +
	"conference\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\b \x01(\tR\tupdatedAt\"\x86\x01\n" +
	"\x14ResolveSchoolRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x12\n" +
	"\x04city\x18\x02 \x01(\tR\x04city\x12&\n" +
	"\x0eclassification\x18\x03 \x01(\tR\x0eclassification\x12\x1e\n" +
	"\n" +
	"conference\x18\x04 \x01(\tR\n" +
	"conference\"\xb0\x01\n" +
	"\x15ResolveSchoolResponse\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x18\n" +
	"\acreated\x18\x03 \x01(\bR\acreated\x12\x16\n" +
	"\x06method\x18\x04 \x01(\tR\x06method\x12\x1f\n" +
	"\valias_added\x18\x05 \x01(\tR\n" +
	"aliasAdded\x12 \n" +
	"\vsuggestions\x18\x06 \x03(\tR\vsuggestions\"\x14\n" +
	"\x12ListSchoolsRequest\"F\n" +
	"\x13ListSchoolsResponse\x12/\n" +
	"\aschools\x18\x01 \x03(\v2\x15.extraction.v1.SchoolR\aschools\"D\n" +
	"\x0fAddAliasRequest\x12\x1b\n" +
	"\tschool_id\x18\x01 \x01(\tR\bschoolId\x12\x14\n" +
	"\x05alias\x18\x02 \x01(\tR\x05alias\"\x12\n" +
	"\x10AddAliasResponse\"6\n" +
	"\x13CommitRosterRequest\x12\x1f\n" +
	"\vroster_json\x18\x01 \x01(\tR\n" +
	"rosterJson\"<\n" +
	"\x15CommitScheduleRequest\x12#\n" +
	"\rschedule_json\x18\x01 \x01(\tR\fscheduleJson\"`\n" +
	"\x11CommitGameRequest\x12\x1b\n" +
	"\tgame_json\x18\x01 \x01(\tR\bgameJson\x12\x16\n" +
	"\x06gender\x18\x02 \x01(\tR\x06gender\x12\x16\n" +
	"\x06season\x18\x03 \x01(\tR\x06season\"\xa2\x01\n" +
	"\x0eCommitResponse\x12\x1b\n" +
	"\tschool_id\x18\x01 \x01(\tR\bschoolId\x12%\n" +
	"\x0eschool_created\x18\x02 \x01(\bR\rschoolCreated\x12\x18\n" +
	"\acreated\x18\x03 \x01(\x05R\acreated\x12\x18\n" +
	"\aupdated\x18\x04 \x01(\x05R\aupdated\x12\x18\n" +
	"\askipped\x18\x05 \x01(\x05R\askipped\"x\n" +
	"\x13ExportRosterRequest\x12\x1b\n" +
	"\tschool_id\x18\x01 \x01(\tR\bschoolId\x12\x14\n" +
	"\x05sport\x18\x02 \x01(\tR\x05sport\x12\x16\n" +
	"\x06gender\x18\x03 \x01(\tR\x06gender\x12\x16\n" +
	"\x06season\x18\x04 \x01(\tR\x06season\"z\n" +
	"\x15ExportScheduleRequest\x12\x1b\n" +
	"\tschool_id\x18\x01 \x01(\tR\bschoolId\x12\x14\n" +
	"\x05sport\x18\x02 \x01(\tR\x05sport\x12\x16\n" +
	"\x06gender\x18\x03 \x01(\tR\x06gender\x12\x16\n" +
	"\x06season\x18\x04 \x01(\tR\x06season\"$\n" +
	"\x0eExportResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\x9f\x02\n" +
	"\x11ExtractionService\x12Z\n" +
	"\x10ExtractScorebook\x12&.extraction.v1.ExtractScorebookRequest\x1a\x1e.extraction.v1.ExtractResponse\x12T\n" +
	"\rExtractRoster\x12#.extraction.v1.ExtractRosterRequest\x1a\x1e.extraction.v1.ExtractResponse\x12X\n" +
	"\x0fExtractSchedule\x12%.extraction.v1.ExtractScheduleRequest\x1a\x1e.extraction.v1.ExtractResponse2\x8f\x02\n" +
	"\x0eSchoolsService\x12Z\n" +
	"\rResolveSchool\x12#.extraction.v1.ResolveSchoolRequest\x1a$.extraction.v1.ResolveSchoolResponse\x12T\n" +
	"\vListSchools\x12!.extraction.v1.ListSchoolsRequest\x1a\".extraction.v1.ListSchoolsResponse\x12K\n" +
	"\bAddAlias\x12\x1e.extraction.v1.AddAliasRequest\x1a\x1f.extraction.v1.AddAliasResponse2\x88\x02\n" +
	"\rCommitService\x12Q\n" +
	"\fCommitRoster\x12\".extraction.v1.CommitRosterRequest\x1a\x1d.extraction.v1.CommitResponse\x12U\n" +
	"\x0eCommitSchedule\x12$.extraction.v1.CommitScheduleRequest\x1a\x1d.extraction.v1.CommitResponse\x12M\n" +
	"\n" +
	"CommitGame\x12 .extraction.v1.CommitGameRequest\x1a\x1d.extraction.v1.CommitResponse2\xb9\x01\n" +
	"\rExportService\x12Q\n" +
	"\fExportRoster\x12\".extraction.v1.ExportRosterRequest\x1a\x1d.extraction.v1.ExportResponse\x12U\n" +
	"\x0eExportSchedule\x12$.extraction.v1.ExportScheduleRequest\x1a\x1d.extraction.v1.ExportResponseBLZJgithub.com/prepsportshq/preps-extract/gen/proto/extraction/v1;extractionv1b\x06proto3"

var (
	file_extraction_v1_extraction_proto_rawDescOnce sync.Once
	file_extraction_v1_extraction_proto_rawDescData []byte
)

func file_extraction_v1_extraction_proto_rawDescGZIP() []byte {
	file_extraction_v1_extraction_proto_rawDescOnce.Do(func() {
		file_extraction_v1_extraction_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_extraction_v1_extraction_proto_rawDesc), len(file_extraction_v1_extraction_proto_rawDesc)))
	})
	return file_extraction_v1_extraction_proto_rawDescData
}

var file_extraction_v1_extraction_proto_msgTypes = make([]protoimpl.MessageInfo, 21)
var file_extraction_v1_extraction_proto_goTypes = []any{
	(*ImageInput)(nil),              // 0: extraction.v1.ImageInput
	(*ValidationIssue)(nil),         // 1: extraction.v1.ValidationIssue
	(*ExtractionResult)(nil),        // 2: extraction.v1.ExtractionResult
	(*ExtractScorebookRequest)(nil), // 3: extraction.v1.ExtractScorebookRequest
	(*ExtractRosterRequest)(nil),    // 4: extraction.v1.ExtractRosterRequest
	(*ExtractScheduleRequest)(nil),  // 5: extraction.v1.ExtractScheduleRequest
	(*ExtractResponse)(nil),         // 6: extraction.v1.ExtractResponse
	(*School)(nil),                  // 7: extraction.v1.School
	(*ResolveSchoolRequest)(nil),    // 8: extraction.v1.ResolveSchoolRequest
	(*ResolveSchoolResponse)(nil),   // 9: extraction.v1.ResolveSchoolResponse
	(*ListSchoolsRequest)(nil),      // 10: extraction.v1.ListSchoolsRequest
	(*ListSchoolsResponse)(nil),     // 11: extraction.v1.ListSchoolsResponse
	(*AddAliasRequest)(nil),         // 12: extraction.v1.AddAliasRequest
	(*AddAliasResponse)(nil),        // 13: extraction.v1.AddAliasResponse
	(*CommitRosterRequest)(nil),     // 14: extraction.v1.CommitRosterRequest
	(*CommitScheduleRequest)(nil),   // 15: extraction.v1.CommitScheduleRequest
	(*CommitGameRequest)(nil),       // 16: extraction.v1.CommitGameRequest
	(*CommitResponse)(nil),          // 17: extraction.v1.CommitResponse
	(*ExportRosterRequest)(nil),     // 18: extraction.v1.ExportRosterRequest
	(*ExportScheduleRequest)(nil),   // 19: extraction.v1.ExportScheduleRequest
	(*ExportResponse)(nil),          // 20: extraction.v1.ExportResponse
}
var file_extraction_v1_extraction_proto_depIdxs = []int32{
	1,  // 0: extraction.v1.ExtractionResult.issues:type_name -> extraction.v1.ValidationIssue
	0,  // 1: extraction.v1.ExtractScorebookRequest.image:type_name -> extraction.v1.ImageInput
	0,  // 2: extraction.v1.ExtractRosterRequest.image:type_name -> extraction.v1.ImageInput
	0,  // 3: extraction.v1.ExtractScheduleRequest.image:type_name -> extraction.v1.ImageInput
	2,  // 4: extraction.v1.ExtractResponse.result:type_name -> extraction.v1.ExtractionResult
	7,  // 5: extraction.v1.ListSchoolsResponse.schools:type_name -> extraction.v1.School
	3,  // 6: extraction.v1.ExtractionService.ExtractScorebook:input_type -> extraction.v1.ExtractScorebookRequest
	4,  // 7: extraction.v1.ExtractionService.ExtractRoster:input_type -> extraction.v1.ExtractRosterRequest
	5,  // 8: extraction.v1.ExtractionService.ExtractSchedule:input_type -> extraction.v1.ExtractScheduleRequest
	8,  // 9: extraction.v1.SchoolsService.ResolveSchool:input_type -> extraction.v1.ResolveSchoolRequest
	10, // 10: extraction.v1.SchoolsService.ListSchools:input_type -> extraction.v1.ListSchoolsRequest
	12, // 11: extraction.v1.SchoolsService.AddAlias:input_type -> extraction.v1.AddAliasRequest
	14, // 12: extraction.v1.CommitService.CommitRoster:input_type -> extraction.v1.CommitRosterRequest
	15, // 13: extraction.v1.CommitService.CommitSchedule:input_type -> extraction.v1.CommitScheduleRequest
	16, // 14: extraction.v1.CommitService.CommitGame:input_type -> extraction.v1.CommitGameRequest
	18, // 15: extraction.v1.ExportService.ExportRoster:input_type -> extraction.v1.ExportRosterRequest
	19, // 16: extraction.v1.ExportService.ExportSchedule:input_type -> extraction.v1.ExportScheduleRequest
	6,  // 17: extraction.v1.ExtractionService.ExtractScorebook:output_type -> extraction.v1.ExtractResponse
	6,  // 18: extraction.v1.ExtractionService.ExtractRoster:output_type -> extraction.v1.ExtractResponse
	6,  // 19: extraction.v1.ExtractionService.ExtractSchedule:output_type -> extraction.v1.ExtractResponse
	9,  // 20: extraction.v1.SchoolsService.ResolveSchool:output_type -> extraction.v1.ResolveSchoolResponse
	11, // 21: extraction.v1.SchoolsService.ListSchools:output_type -> extraction.v1.ListSchoolsResponse
	13, // 22: extraction.v1.SchoolsService.AddAlias:output_type -> extraction.v1.AddAliasResponse
	17, // 23: extraction.v1.CommitService.CommitRoster:output_type -> extraction.v1.CommitResponse
	17, // 24: extraction.v1.CommitService.CommitSchedule:output_type -> extraction.v1.CommitResponse
	17, // 25: extraction.v1.CommitService.CommitGame:output_type -> extraction.v1.CommitResponse
	20, // 26: extraction.v1.ExportService.ExportRoster:output_type -> extraction.v1.ExportResponse
	20, // 27: extraction.v1.ExportService.ExportSchedule:output_type -> extraction.v1.ExportResponse
	17, // [17:28] is the sub-list for method output_type
	6,  // [6:17] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_extraction_v1_extraction_proto_init() }
func file_extraction_v1_extraction_proto_init() {
	if File_extraction_v1_extraction_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_extraction_v1_extraction_proto_rawDesc), len(file_extraction_v1_extraction_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   21,
			NumExtensions: 0,
			NumServices:   4,
		},
		GoTypes:           file_extraction_v1_extraction_proto_goTypes,
		DependencyIndexes: file_extraction_v1_extraction_proto_depIdxs,
		MessageInfos:      file_extraction_v1_extraction_proto_msgTypes,
	}.Build()
	File_extraction_v1_extraction_proto = out.File
	file_extraction_v1_extraction_proto_goTypes = nil
	file_extraction_v1_extraction_proto_depIdxs = nil
}
