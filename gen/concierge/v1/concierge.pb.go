// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: concierge/v1/concierge.proto

package conciergev1

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

type Visitor struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	TaxId         string                 `protobuf:"bytes,3,opt,name=tax_id,json=taxId,proto3" json:"tax_id,omitempty"`             // 11 digits, empty when unknown
	BirthDate     string                 `protobuf:"bytes,4,opt,name=birth_date,json=birthDate,proto3" json:"birth_date,omitempty"` // DD/MM/YYYY, empty when unknown
	PhotoPath     string                 `protobuf:"bytes,5,opt,name=photo_path,json=photoPath,proto3" json:"photo_path,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	UpdatedAt     string                 `protobuf:"bytes,7,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Visitor) Reset() {
	*x = Visitor{}
	mi := &file_concierge_v1_concierge_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Visitor) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Visitor) ProtoMessage() {}

func (x *Visitor) ProtoReflect() protoreflect.Message {
	mi := &file_concierge_v1_concierge_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Visitor.ProtoReflect.Descriptor instead.
func (*Visitor) Descriptor() ([]byte, []int) {
	return file_concierge_v1_concierge_proto_rawDescGZIP(), []int{0}
}

func (x *Visitor) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Visitor) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Visitor) GetTaxId() string {
	if x != nil {
		return x.TaxId
	}
	return ""
}

func (x *Visitor) GetBirthDate() string {
	if x != nil {
		return x.BirthDate
	}
	return ""
}

func (x *Visitor) GetPhotoPath() string {
	if x != nil {
		return x.PhotoPath
	}
	return ""
}

func (x *Visitor) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Visitor) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type RegisterVisitorRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	TaxId         string                 `protobuf:"bytes,2,opt,name=tax_id,json=taxId,proto3" json:"tax_id,omitempty"`             // optional
	BirthDate     string                 `protobuf:"bytes,3,opt,name=birth_date,json=birthDate,proto3" json:"birth_date,omitempty"` // optional, DD/MM/YYYY
	PhotoPath     string                 `protobuf:"bytes,4,opt,name=photo_path,json=photoPath,proto3" json:"photo_path,omitempty"` // optional enrollment photo
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterVisitorRequest) Reset() {
	*x = RegisterVisitorRequest{}
	mi := &file_concierge_v1_concierge_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterVisitorRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterVisitorRequest) ProtoMessage() {}

func (x *RegisterVisitorRequest) ProtoReflect() protoreflect.Message {
	mi := &file_concierge_v1_concierge_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterVisitorRequest.ProtoReflect.Descriptor instead.
func (*RegisterVisitorRequest) Descriptor() ([]byte, []int) {
	return file_concierge_v1_concierge_proto_rawDescGZIP(), []int{1}
}

func (x *RegisterVisitorRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *RegisterVisitorRequest) GetTaxId() string {
	if x != nil {
		return x.TaxId
	}
	return ""
}

func (x *RegisterVisitorRequest) GetBirthDate() string {
	if x != nil {
		return x.BirthDate
	}
	return ""
}

func (x *RegisterVisitorRequest) GetPhotoPath() string {
	if x != nil {
		return x.PhotoPath
	}
	return ""
}

type RegisterVisitorResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Visitor       *Visitor               `protobuf:"bytes,1,opt,name=visitor,proto3" json:"visitor,omitempty"`
	Existing      bool                   `protobuf:"varint,2,opt,name=existing,proto3" json:"existing,omitempty"` // an enrolled visitor with the same tax id was reused
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterVisitorResponse) Reset() {
	*x = RegisterVisitorResponse{}
	mi := &file_concierge_v1_concierge_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterVisitorResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterVisitorResponse) ProtoMessage() {}

func (x *RegisterVisitorResponse) ProtoReflect() protoreflect.Message {
	mi := &file_concierge_v1_concierge_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterVisitorResponse.ProtoReflect.Descriptor instead.
func (*RegisterVisitorResponse) Descriptor() ([]byte, []int) {
	return file_concierge_v1_concierge_proto_rawDescGZIP(), []int{2}
}

func (x *RegisterVisitorResponse) GetVisitor() *Visitor {
	if x != nil {
		return x.Visitor
	}
	return nil
}

func (x *RegisterVisitorResponse) GetExisting() bool {
	if x != nil {
		return x.Existing
	}
	return false
}

type ListVisitorsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVisitorsRequest) Reset() {
	*x = ListVisitorsRequest{}
	mi := &file_concierge_v1_concierge_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVisitorsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVisitorsRequest) ProtoMessage() {}

func (x *ListVisitorsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_concierge_v1_concierge_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVisitorsRequest.ProtoReflect.Descriptor instead.
func (*ListVisitorsRequest) Descriptor() ([]byte, []int) {
	return file_concierge_v1_concierge_proto_rawDescGZIP(), []int{3}
}

type ListVisitorsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Visitors      []*Visitor             `protobuf:"bytes,1,rep,name=visitors,proto3" json:"visitors,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVisitorsResponse) Reset() {
	*x = ListVisitorsResponse{}
	mi := &file_concierge_v1_concierge_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVisitorsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVisitorsResponse) ProtoMessage() {}

func (x *ListVisitorsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_concierge_v1_concierge_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVisitorsResponse.ProtoReflect.Descriptor instead.
func (*ListVisitorsResponse) Descriptor() ([]byte, []int) {
	return file_concierge_v1_concierge_proto_rawDescGZIP(), []int{4}
}

func (x *ListVisitorsResponse) GetVisitors() []*Visitor {
	if x != nil {
		return x.Visitors
	}
	return nil
}

type ScanDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SourcePath    string                 `protobuf:"bytes,1,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"` // document photo on the daemon host
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanDocumentRequest) Reset() {
	*x = ScanDocumentRequest{}
	mi := &file_concierge_v1_concierge_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanDocumentRequest) ProtoMessage() {}

func (x *ScanDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_concierge_v1_concierge_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanDocumentRequest.ProtoReflect.Descriptor instead.
func (*ScanDocumentRequest) Descriptor() ([]byte, []int) {
	return file_concierge_v1_concierge_proto_rawDescGZIP(), []int{5}
}

func (x *ScanDocumentRequest) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

type ScanDocumentResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	JobId string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	// Extracted fields; empty string means "not found".
	Name          string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	TaxId         string `protobuf:"bytes,3,opt,name=tax_id,json=taxId,proto3" json:"tax_id,omitempty"`
	BirthDate     string `protobuf:"bytes,4,opt,name=birth_date,json=birthDate,proto3" json:"birth_date,omitempty"`
	NeedsReview   bool   `protobuf:"varint,5,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanDocumentResponse) Reset() {
	*x = ScanDocumentResponse{}
	mi := &file_concierge_v1_concierge_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanDocumentResponse) ProtoMessage() {}

func (x *ScanDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_concierge_v1_concierge_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanDocumentResponse.ProtoReflect.Descriptor instead.
func (*ScanDocumentResponse) Descriptor() ([]byte, []int) {
	return file_concierge_v1_concierge_proto_rawDescGZIP(), []int{6}
}

func (x *ScanDocumentResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ScanDocumentResponse) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ScanDocumentResponse) GetTaxId() string {
	if x != nil {
		return x.TaxId
	}
	return ""
}

func (x *ScanDocumentResponse) GetBirthDate() string {
	if x != nil {
		return x.BirthDate
	}
	return ""
}

func (x *ScanDocumentResponse) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

type RecognizeFaceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PhotoPath     string                 `protobuf:"bytes,1,opt,name=photo_path,json=photoPath,proto3" json:"photo_path,omitempty"` // captured frame on the daemon host
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecognizeFaceRequest) Reset() {
	*x = RecognizeFaceRequest{}
	mi := &file_concierge_v1_concierge_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecognizeFaceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecognizeFaceRequest) ProtoMessage() {}

func (x *RecognizeFaceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_concierge_v1_concierge_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecognizeFaceRequest.ProtoReflect.Descriptor instead.
func (*RecognizeFaceRequest) Descriptor() ([]byte, []int) {
	return file_concierge_v1_concierge_proto_rawDescGZIP(), []int{7}
}

func (x *RecognizeFaceRequest) GetPhotoPath() string {
	if x != nil {
		return x.PhotoPath
	}
	return ""
}

type RecognizeFaceResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// SCANNING | MANUAL_SELECTION | MATCHED
	State         string  `protobuf:"bytes,1,opt,name=state,proto3" json:"state,omitempty"`
	VisitorId     string  `protobuf:"bytes,2,opt,name=visitor_id,json=visitorId,proto3" json:"visitor_id,omitempty"` // set when state == MATCHED
	Distance      float64 `protobuf:"fixed64,3,opt,name=distance,proto3" json:"distance,omitempty"`
	Confidence    float64 `protobuf:"fixed64,4,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecognizeFaceResponse) Reset() {
	*x = RecognizeFaceResponse{}
	mi := &file_concierge_v1_concierge_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecognizeFaceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecognizeFaceResponse) ProtoMessage() {}

func (x *RecognizeFaceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_concierge_v1_concierge_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecognizeFaceResponse.ProtoReflect.Descriptor instead.
func (*RecognizeFaceResponse) Descriptor() ([]byte, []int) {
	return file_concierge_v1_concierge_proto_rawDescGZIP(), []int{8}
}

func (x *RecognizeFaceResponse) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *RecognizeFaceResponse) GetVisitorId() string {
	if x != nil {
		return x.VisitorId
	}
	return ""
}

func (x *RecognizeFaceResponse) GetDistance() float64 {
	if x != nil {
		return x.Distance
	}
	return 0
}

func (x *RecognizeFaceResponse) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type RegisterEntryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VisitorId     string                 `protobuf:"bytes,1,opt,name=visitor_id,json=visitorId,proto3" json:"visitor_id,omitempty"`
	Method        string                 `protobuf:"bytes,2,opt,name=method,proto3" json:"method,omitempty"` // FACE | MANUAL | DOCUMENT
	Confidence    float64                `protobuf:"fixed64,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Notes         string                 `protobuf:"bytes,4,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterEntryRequest) Reset() {
	*x = RegisterEntryRequest{}
	mi := &file_concierge_v1_concierge_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterEntryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterEntryRequest) ProtoMessage() {}

func (x *RegisterEntryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_concierge_v1_concierge_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterEntryRequest.ProtoReflect.Descriptor instead.
func (*RegisterEntryRequest) Descriptor() ([]byte, []int) {
	return file_concierge_v1_concierge_proto_rawDescGZIP(), []int{9}
}

func (x *RegisterEntryRequest) GetVisitorId() string {
	if x != nil {
		return x.VisitorId
	}
	return ""
}

func (x *RegisterEntryRequest) GetMethod() string {
	if x != nil {
		return x.Method
	}
	return ""
}

func (x *RegisterEntryRequest) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *RegisterEntryRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type RegisterEntryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VisitId       string                 `protobuf:"bytes,1,opt,name=visit_id,json=visitId,proto3" json:"visit_id,omitempty"`
	EntryAt       string                 `protobuf:"bytes,2,opt,name=entry_at,json=entryAt,proto3" json:"entry_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterEntryResponse) Reset() {
	*x = RegisterEntryResponse{}
	mi := &file_concierge_v1_concierge_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterEntryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterEntryResponse) ProtoMessage() {}

func (x *RegisterEntryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_concierge_v1_concierge_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterEntryResponse.ProtoReflect.Descriptor instead.
func (*RegisterEntryResponse) Descriptor() ([]byte, []int) {
	return file_concierge_v1_concierge_proto_rawDescGZIP(), []int{10}
}

func (x *RegisterEntryResponse) GetVisitId() string {
	if x != nil {
		return x.VisitId
	}
	return ""
}

func (x *RegisterEntryResponse) GetEntryAt() string {
	if x != nil {
		return x.EntryAt
	}
	return ""
}

type RegisterExitRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VisitorId     string                 `protobuf:"bytes,1,opt,name=visitor_id,json=visitorId,proto3" json:"visitor_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterExitRequest) Reset() {
	*x = RegisterExitRequest{}
	mi := &file_concierge_v1_concierge_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterExitRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterExitRequest) ProtoMessage() {}

func (x *RegisterExitRequest) ProtoReflect() protoreflect.Message {
	mi := &file_concierge_v1_concierge_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterExitRequest.ProtoReflect.Descriptor instead.
func (*RegisterExitRequest) Descriptor() ([]byte, []int) {
	return file_concierge_v1_concierge_proto_rawDescGZIP(), []int{11}
}

func (x *RegisterExitRequest) GetVisitorId() string {
	if x != nil {
		return x.VisitorId
	}
	return ""
}

type RegisterExitResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VisitId       string                 `protobuf:"bytes,1,opt,name=visit_id,json=visitId,proto3" json:"visit_id,omitempty"`
	ExitAt        string                 `protobuf:"bytes,2,opt,name=exit_at,json=exitAt,proto3" json:"exit_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterExitResponse) Reset() {
	*x = RegisterExitResponse{}
	mi := &file_concierge_v1_concierge_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterExitResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterExitResponse) ProtoMessage() {}

func (x *RegisterExitResponse) ProtoReflect() protoreflect.Message {
	mi := &file_concierge_v1_concierge_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterExitResponse.ProtoReflect.Descriptor instead.
func (*RegisterExitResponse) Descriptor() ([]byte, []int) {
	return file_concierge_v1_concierge_proto_rawDescGZIP(), []int{12}
}

func (x *RegisterExitResponse) GetVisitId() string {
	if x != nil {
		return x.VisitId
	}
	return ""
}

func (x *RegisterExitResponse) GetExitAt() string {
	if x != nil {
		return x.ExitAt
	}
	return ""
}

type Visit struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	VisitorId     string                 `protobuf:"bytes,2,opt,name=visitor_id,json=visitorId,proto3" json:"visitor_id,omitempty"`
	VisitorName   string                 `protobuf:"bytes,3,opt,name=visitor_name,json=visitorName,proto3" json:"visitor_name,omitempty"`
	EntryAt       string                 `protobuf:"bytes,4,opt,name=entry_at,json=entryAt,proto3" json:"entry_at,omitempty"` // RFC 3339
	ExitAt        string                 `protobuf:"bytes,5,opt,name=exit_at,json=exitAt,proto3" json:"exit_at,omitempty"`    // RFC 3339, empty while the visit is open
	Method        string                 `protobuf:"bytes,6,opt,name=method,proto3" json:"method,omitempty"`
	Confidence    float64                `protobuf:"fixed64,7,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Notes         string                 `protobuf:"bytes,8,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Visit) Reset() {
	*x = Visit{}
	mi := &file_concierge_v1_concierge_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Visit) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Visit) ProtoMessage() {}

func (x *Visit) ProtoReflect() protoreflect.Message {
	mi := &file_concierge_v1_concierge_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Visit.ProtoReflect.Descriptor instead.
func (*Visit) Descriptor() ([]byte, []int) {
	return file_concierge_v1_concierge_proto_rawDescGZIP(), []int{13}
}

func (x *Visit) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Visit) GetVisitorId() string {
	if x != nil {
		return x.VisitorId
	}
	return ""
}

func (x *Visit) GetVisitorName() string {
	if x != nil {
		return x.VisitorName
	}
	return ""
}

func (x *Visit) GetEntryAt() string {
	if x != nil {
		return x.EntryAt
	}
	return ""
}

func (x *Visit) GetExitAt() string {
	if x != nil {
		return x.ExitAt
	}
	return ""
}

func (x *Visit) GetMethod() string {
	if x != nil {
		return x.Method
	}
	return ""
}

func (x *Visit) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Visit) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type ListVisitsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`  // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`        // YYYY-MM-DD, optional
	OpenOnly      bool                   `protobuf:"varint,3,opt,name=open_only,json=openOnly,proto3" json:"open_only,omitempty"` // only visits without a registered exit
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVisitsRequest) Reset() {
	*x = ListVisitsRequest{}
	mi := &file_concierge_v1_concierge_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVisitsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVisitsRequest) ProtoMessage() {}

func (x *ListVisitsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_concierge_v1_concierge_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVisitsRequest.ProtoReflect.Descriptor instead.
func (*ListVisitsRequest) Descriptor() ([]byte, []int) {
	return file_concierge_v1_concierge_proto_rawDescGZIP(), []int{14}
}

func (x *ListVisitsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListVisitsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ListVisitsRequest) GetOpenOnly() bool {
	if x != nil {
		return x.OpenOnly
	}
	return false
}

type ListVisitsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Visits        []*Visit               `protobuf:"bytes,1,rep,name=visits,proto3" json:"visits,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVisitsResponse) Reset() {
	*x = ListVisitsResponse{}
	mi := &file_concierge_v1_concierge_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVisitsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVisitsResponse) ProtoMessage() {}

func (x *ListVisitsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_concierge_v1_concierge_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVisitsResponse.ProtoReflect.Descriptor instead.
func (*ListVisitsResponse) Descriptor() ([]byte, []int) {
	return file_concierge_v1_concierge_proto_rawDescGZIP(), []int{15}
}

func (x *ListVisitsResponse) GetVisits() []*Visit {
	if x != nil {
		return x.Visits
	}
	return nil
}

type ExportVisitsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportVisitsRequest) Reset() {
	*x = ExportVisitsRequest{}
	mi := &file_concierge_v1_concierge_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportVisitsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportVisitsRequest) ProtoMessage() {}

func (x *ExportVisitsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_concierge_v1_concierge_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportVisitsRequest.ProtoReflect.Descriptor instead.
func (*ExportVisitsRequest) Descriptor() ([]byte, []int) {
	return file_concierge_v1_concierge_proto_rawDescGZIP(), []int{16}
}

func (x *ExportVisitsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportVisitsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportVisitsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportVisitsResponse) Reset() {
	*x = ExportVisitsResponse{}
	mi := &file_concierge_v1_concierge_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportVisitsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportVisitsResponse) ProtoMessage() {}

func (x *ExportVisitsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_concierge_v1_concierge_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportVisitsResponse.ProtoReflect.Descriptor instead.
func (*ExportVisitsResponse) Descriptor() ([]byte, []int) {
	return file_concierge_v1_concierge_proto_rawDescGZIP(), []int{17}
}

func (x *ExportVisitsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_concierge_v1_concierge_proto protoreflect.FileDescriptor

const file_concierge_v1_concierge_proto_rawDesc = "" +
	"\n" +
	"\x1cconcierge/v1/concierge.proto\x12\fconcierge.v1\"\xc0\x01\n" +
	"\aVisitor\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x15\n" +
	"\x06tax_id\x18\x03 \x01(\tR\x05taxId\x12\x1d\n" +
	"\n" +
	"birth_date\x18\x04 \x01(\tR\tbirthDate\x12\x1d\n" +
	"\n" +
	"photo_path\x18\x05 \x01(\tR\tphotoPath\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\a \x01(\tR\tupdatedAt\"\x81\x01\n" +
	"\x16RegisterVisitorRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x15\n" +
	"\x06tax_id\x18\x02 \x01(\tR\x05taxId\x12\x1d\n" +
	"\n" +
	"birth_date\x18\x03 \x01(\tR\tbirthDate\x12\x1d\n" +
	"\n" +
	"photo_path\x18\x04 \x01(\tR\tphotoPath\"f\n" +
	"\x17RegisterVisitorResponse\x12/\n" +
	"\avisitor\x18\x01 \x01(\v2\x15.concierge.v1.VisitorR\avisitor\x12\x1a\n" +
	"\bexisting\x18\x02 \x01(\bR\bexisting\"\x15\n" +
	"\x13ListVisitorsRequest\"I\n" +
	"\x14ListVisitorsResponse\x121\n" +
	"\bvisitors\x18\x01 \x03(\v2\x15.concierge.v1.VisitorR\bvisitors\"6\n" +
	"\x13ScanDocumentRequest\x12\x1f\n" +
	"\vsource_path\x18\x01 \x01(\tR\n" +
	"sourcePath\"\x9a\x01\n" +
	"\x14ScanDocumentResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x15\n" +
	"\x06tax_id\x18\x03 \x01(\tR\x05taxId\x12\x1d\n" +
	"\n" +
	"birth_date\x18\x04 \x01(\tR\tbirthDate\x12!\n" +
	"\fneeds_review\x18\x05 \x01(\bR\vneedsReview\"5\n" +
	"\x14RecognizeFaceRequest\x12\x1d\n" +
	"\n" +
	"photo_path\x18\x01 \x01(\tR\tphotoPath\"\x88\x01\n" +
	"\x15RecognizeFaceResponse\x12\x14\n" +
	"\x05state\x18\x01 \x01(\tR\x05state\x12\x1d\n" +
	"\n" +
	"visitor_id\x18\x02 \x01(\tR\tvisitorId\x12\x1a\n" +
	"\bdistance\x18\x03 \x01(\x01R\bdistance\x12\x1e\n" +
	"\n" +
	"confidence\x18\x04 \x01(\x01R\n" +
	"confidence\"\x83\x01\n" +
	"\x14RegisterEntryRequest\x12\x1d\n" +
	"\n" +
	"visitor_id\x18\x01 \x01(\tR\tvisitorId\x12\x16\n" +
	"\x06method\x18\x02 \x01(\tR\x06method\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x01R\n" +
	"confidence\x12\x14\n" +
	"\x05notes\x18\x04 \x01(\tR\x05notes\"M\n" +
	"\x15RegisterEntryResponse\x12\x19\n" +
	"\bvisit_id\x18\x01 \x01(\tR\avisitId\x12\x19\n" +
	"\bentry_at\x18\x02 \x01(\tR\aentryAt\"4\n" +
	"\x13RegisterExitRequest\x12\x1d\n" +
	"\n" +
	"visitor_id\x18\x01 \x01(\tR\tvisitorId\"J\n" +
	"\x14RegisterExitResponse\x12\x19\n" +
	"\bvisit_id\x18\x01 \x01(\tR\avisitId\x12\x17\n" +
	"\aexit_at\x18\x02 \x01(\tR\x06exitAt\"\xdb\x01\n" +
	"\x05Visit\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"visitor_id\x18\x02 \x01(\tR\tvisitorId\x12!\n" +
	"\fvisitor_name\x18\x03 \x01(\tR\vvisitorName\x12\x19\n" +
	"\bentry_at\x18\x04 \x01(\tR\aentryAt\x12\x17\n" +
	"\aexit_at\x18\x05 \x01(\tR\x06exitAt\x12\x16\n" +
	"\x06method\x18\x06 \x01(\tR\x06method\x12\x1e\n" +
	"\n" +
	"confidence\x18\a \x01(\x01R\n" +
	"confidence\x12\x14\n" +
	"\x05notes\x18\b \x01(\tR\x05notes\"f\n" +
	"\x11ListVisitsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\x12\x1b\n" +
	"\topen_only\x18\x03 \x01(\bR\bopenOnly\"A\n" +
	"\x12ListVisitsResponse\x12+\n" +
	"\x06visits\x18\x01 \x03(\v2\x13.concierge.v1.VisitR\x06visits\"K\n" +
	"\x13ExportVisitsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"*\n" +
	"\x14ExportVisitsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xd3\x05\n" +
	"\x10ConciergeService\x12^\n" +
	"\x0fRegisterVisitor\x12$.concierge.v1.RegisterVisitorRequest\x1a%.concierge.v1.RegisterVisitorResponse\x12U\n" +
	"\fListVisitors\x12!.concierge.v1.ListVisitorsRequest\x1a\".concierge.v1.ListVisitorsResponse\x12U\n" +
	"\fScanDocument\x12!.concierge.v1.ScanDocumentRequest\x1a\".concierge.v1.ScanDocumentResponse\x12X\n" +
	"\rRecognizeFace\x12\".concierge.v1.RecognizeFaceRequest\x1a#.concierge.v1.RecognizeFaceResponse\x12X\n" +
	"\rRegisterEntry\x12\".concierge.v1.RegisterEntryRequest\x1a#.concierge.v1.RegisterEntryResponse\x12U\n" +
	"\fRegisterExit\x12!.concierge.v1.RegisterExitRequest\x1a\".concierge.v1.RegisterExitResponse\x12O\n" +
	"\n" +
	"ListVisits\x12\x1f.concierge.v1.ListVisitsRequest\x1a .concierge.v1.ListVisitsResponse\x12U\n" +
	"\fExportVisits\x12!.concierge.v1.ExportVisitsRequest\x1a\".concierge.v1.ExportVisitsResponseBDZBgithub.com/portaria-digital/concierge/gen/concierge/v1;conciergev1b\x06proto3"

var (
	file_concierge_v1_concierge_proto_rawDescOnce sync.Once
	file_concierge_v1_concierge_proto_rawDescData []byte
)

func file_concierge_v1_concierge_proto_rawDescGZIP() []byte {
	file_concierge_v1_concierge_proto_rawDescOnce.Do(func() {
		file_concierge_v1_concierge_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_concierge_v1_concierge_proto_rawDesc), len(file_concierge_v1_concierge_proto_rawDesc)))
	})
	return file_concierge_v1_concierge_proto_rawDescData
}

var file_concierge_v1_concierge_proto_msgTypes = make([]protoimpl.MessageInfo, 18)
var file_concierge_v1_concierge_proto_goTypes = []any{
	(*Visitor)(nil),                 // 0: concierge.v1.Visitor
	(*RegisterVisitorRequest)(nil),  // 1: concierge.v1.RegisterVisitorRequest
	(*RegisterVisitorResponse)(nil), // 2: concierge.v1.RegisterVisitorResponse
	(*ListVisitorsRequest)(nil),     // 3: concierge.v1.ListVisitorsRequest
	(*ListVisitorsResponse)(nil),    // 4: concierge.v1.ListVisitorsResponse
	(*ScanDocumentRequest)(nil),     // 5: concierge.v1.ScanDocumentRequest
	(*ScanDocumentResponse)(nil),    // 6: concierge.v1.ScanDocumentResponse
	(*RecognizeFaceRequest)(nil),    // 7: concierge.v1.RecognizeFaceRequest
	(*RecognizeFaceResponse)(nil),   // 8: concierge.v1.RecognizeFaceResponse
	(*RegisterEntryRequest)(nil),    // 9: concierge.v1.RegisterEntryRequest
	(*RegisterEntryResponse)(nil),   // 10: concierge.v1.RegisterEntryResponse
	(*RegisterExitRequest)(nil),     // 11: concierge.v1.RegisterExitRequest
	(*RegisterExitResponse)(nil),    // 12: concierge.v1.RegisterExitResponse
	(*Visit)(nil),                   // 13: concierge.v1.Visit
	(*ListVisitsRequest)(nil),       // 14: concierge.v1.ListVisitsRequest
	(*ListVisitsResponse)(nil),      // 15: concierge.v1.ListVisitsResponse
	(*ExportVisitsRequest)(nil),     // 16: concierge.v1.ExportVisitsRequest
	(*ExportVisitsResponse)(nil),    // 17: concierge.v1.ExportVisitsResponse
}
var file_concierge_v1_concierge_proto_depIdxs = []int32{
	0,  // 0: concierge.v1.RegisterVisitorResponse.visitor:type_name -> concierge.v1.Visitor
	0,  // 1: concierge.v1.ListVisitorsResponse.visitors:type_name -> concierge.v1.Visitor
	13, // 2: concierge.v1.ListVisitsResponse.visits:type_name -> concierge.v1.Visit
	1,  // 3: concierge.v1.ConciergeService.RegisterVisitor:input_type -> concierge.v1.RegisterVisitorRequest
	3,  // 4: concierge.v1.ConciergeService.ListVisitors:input_type -> concierge.v1.ListVisitorsRequest
	5,  // 5: concierge.v1.ConciergeService.ScanDocument:input_type -> concierge.v1.ScanDocumentRequest
	7,  // 6: concierge.v1.ConciergeService.RecognizeFace:input_type -> concierge.v1.RecognizeFaceRequest
	9,  // 7: concierge.v1.ConciergeService.RegisterEntry:input_type -> concierge.v1.RegisterEntryRequest
	11, // 8: concierge.v1.ConciergeService.RegisterExit:input_type -> concierge.v1.RegisterExitRequest
	14, // 9: concierge.v1.ConciergeService.ListVisits:input_type -> concierge.v1.ListVisitsRequest
	16, // 10: concierge.v1.ConciergeService.ExportVisits:input_type -> concierge.v1.ExportVisitsRequest
	2,  // 11: concierge.v1.ConciergeService.RegisterVisitor:output_type -> concierge.v1.RegisterVisitorResponse
	4,  // 12: concierge.v1.ConciergeService.ListVisitors:output_type -> concierge.v1.ListVisitorsResponse
	6,  // 13: concierge.v1.ConciergeService.ScanDocument:output_type -> concierge.v1.ScanDocumentResponse
	8,  // 14: concierge.v1.ConciergeService.RecognizeFace:output_type -> concierge.v1.RecognizeFaceResponse
	10, // 15: concierge.v1.ConciergeService.RegisterEntry:output_type -> concierge.v1.RegisterEntryResponse
	12, // 16: concierge.v1.ConciergeService.RegisterExit:output_type -> concierge.v1.RegisterExitResponse
	15, // 17: concierge.v1.ConciergeService.ListVisits:output_type -> concierge.v1.ListVisitsResponse
	17, // 18: concierge.v1.ConciergeService.ExportVisits:output_type -> concierge.v1.ExportVisitsResponse
	11, // [11:19] is the sub-list for method output_type
	3,  // [3:11] is the sub-list for method input_type
	3,  // [3:3] is the sub-list for extension type_name
	3,  // [3:3] is the sub-list for extension extendee
	0,  // [0:3] is the sub-list for field type_name
}

func init() { file_concierge_v1_concierge_proto_init() }
func file_concierge_v1_concierge_proto_init() {
	if File_concierge_v1_concierge_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_concierge_v1_concierge_proto_rawDesc), len(file_concierge_v1_concierge_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   18,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_concierge_v1_concierge_proto_goTypes,
		DependencyIndexes: file_concierge_v1_concierge_proto_depIdxs,
		MessageInfos:      file_concierge_v1_concierge_proto_msgTypes,
	}.Build()
	File_concierge_v1_concierge_proto = out.File
	file_concierge_v1_concierge_proto_goTypes = nil
	file_concierge_v1_concierge_proto_depIdxs = nil
}
