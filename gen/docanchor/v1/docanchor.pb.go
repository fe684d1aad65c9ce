// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: docanchor/v1/docanchor.proto

package docanchorv1

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

type IngestionRecord struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Subject       string                 `protobuf:"bytes,2,opt,name=subject,proto3" json:"subject,omitempty"`
	Filename      string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	Fingerprint   string                 `protobuf:"bytes,4,opt,name=fingerprint,proto3" json:"fingerprint,omitempty"`
	Cid           string                 `protobuf:"bytes,5,opt,name=cid,proto3" json:"cid,omitempty"`
	TxHash        string                 `protobuf:"bytes,6,opt,name=tx_hash,json=txHash,proto3" json:"tx_hash,omitempty"`
	BlockNumber   uint64                 `protobuf:"varint,7,opt,name=block_number,json=blockNumber,proto3" json:"block_number,omitempty"`
	Status        string                 `protobuf:"bytes,8,opt,name=status,proto3" json:"status,omitempty"`
	FailureHint   string                 `protobuf:"bytes,9,opt,name=failure_hint,json=failureHint,proto3" json:"failure_hint,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestionRecord) Reset() {
	*x = IngestionRecord{}
	mi := &file_docanchor_v1_docanchor_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestionRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestionRecord) ProtoMessage() {}

func (x *IngestionRecord) ProtoReflect() protoreflect.Message {
	mi := &file_docanchor_v1_docanchor_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestionRecord.ProtoReflect.Descriptor instead.
func (*IngestionRecord) Descriptor() ([]byte, []int) {
	return file_docanchor_v1_docanchor_proto_rawDescGZIP(), []int{0}
}

func (x *IngestionRecord) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *IngestionRecord) GetSubject() string {
	if x != nil {
		return x.Subject
	}
	return ""
}

func (x *IngestionRecord) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *IngestionRecord) GetFingerprint() string {
	if x != nil {
		return x.Fingerprint
	}
	return ""
}

func (x *IngestionRecord) GetCid() string {
	if x != nil {
		return x.Cid
	}
	return ""
}

func (x *IngestionRecord) GetTxHash() string {
	if x != nil {
		return x.TxHash
	}
	return ""
}

func (x *IngestionRecord) GetBlockNumber() uint64 {
	if x != nil {
		return x.BlockNumber
	}
	return 0
}

func (x *IngestionRecord) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *IngestionRecord) GetFailureHint() string {
	if x != nil {
		return x.FailureHint
	}
	return ""
}

func (x *IngestionRecord) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *IngestionRecord) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type UploadDocumentRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// subject is the document owner's principal address (EIP-55 or lowercase).
	Subject       string `protobuf:"bytes,1,opt,name=subject,proto3" json:"subject,omitempty"`
	Filename      string `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentRequest) Reset() {
	*x = UploadDocumentRequest{}
	mi := &file_docanchor_v1_docanchor_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentRequest) ProtoMessage() {}

func (x *UploadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docanchor_v1_docanchor_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentRequest.ProtoReflect.Descriptor instead.
func (*UploadDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docanchor_v1_docanchor_proto_rawDescGZIP(), []int{1}
}

func (x *UploadDocumentRequest) GetSubject() string {
	if x != nil {
		return x.Subject
	}
	return ""
}

func (x *UploadDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type UploadDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Record        *IngestionRecord       `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentResponse) Reset() {
	*x = UploadDocumentResponse{}
	mi := &file_docanchor_v1_docanchor_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentResponse) ProtoMessage() {}

func (x *UploadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docanchor_v1_docanchor_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentResponse.ProtoReflect.Descriptor instead.
func (*UploadDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docanchor_v1_docanchor_proto_rawDescGZIP(), []int{2}
}

func (x *UploadDocumentResponse) GetRecord() *IngestionRecord {
	if x != nil {
		return x.Record
	}
	return nil
}

type GetIngestionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetIngestionRequest) Reset() {
	*x = GetIngestionRequest{}
	mi := &file_docanchor_v1_docanchor_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetIngestionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetIngestionRequest) ProtoMessage() {}

func (x *GetIngestionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docanchor_v1_docanchor_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetIngestionRequest.ProtoReflect.Descriptor instead.
func (*GetIngestionRequest) Descriptor() ([]byte, []int) {
	return file_docanchor_v1_docanchor_proto_rawDescGZIP(), []int{3}
}

func (x *GetIngestionRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetIngestionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Record        *IngestionRecord       `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetIngestionResponse) Reset() {
	*x = GetIngestionResponse{}
	mi := &file_docanchor_v1_docanchor_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetIngestionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetIngestionResponse) ProtoMessage() {}

func (x *GetIngestionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docanchor_v1_docanchor_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetIngestionResponse.ProtoReflect.Descriptor instead.
func (*GetIngestionResponse) Descriptor() ([]byte, []int) {
	return file_docanchor_v1_docanchor_proto_rawDescGZIP(), []int{4}
}

func (x *GetIngestionResponse) GetRecord() *IngestionRecord {
	if x != nil {
		return x.Record
	}
	return nil
}

type ListIngestionsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Exactly one of subject or fingerprint must be set.
	Subject       string `protobuf:"bytes,1,opt,name=subject,proto3" json:"subject,omitempty"`
	Fingerprint   string `protobuf:"bytes,2,opt,name=fingerprint,proto3" json:"fingerprint,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListIngestionsRequest) Reset() {
	*x = ListIngestionsRequest{}
	mi := &file_docanchor_v1_docanchor_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListIngestionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListIngestionsRequest) ProtoMessage() {}

func (x *ListIngestionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docanchor_v1_docanchor_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListIngestionsRequest.ProtoReflect.Descriptor instead.
func (*ListIngestionsRequest) Descriptor() ([]byte, []int) {
	return file_docanchor_v1_docanchor_proto_rawDescGZIP(), []int{5}
}

func (x *ListIngestionsRequest) GetSubject() string {
	if x != nil {
		return x.Subject
	}
	return ""
}

func (x *ListIngestionsRequest) GetFingerprint() string {
	if x != nil {
		return x.Fingerprint
	}
	return ""
}

type ListIngestionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Records       []*IngestionRecord     `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListIngestionsResponse) Reset() {
	*x = ListIngestionsResponse{}
	mi := &file_docanchor_v1_docanchor_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListIngestionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListIngestionsResponse) ProtoMessage() {}

func (x *ListIngestionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docanchor_v1_docanchor_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListIngestionsResponse.ProtoReflect.Descriptor instead.
func (*ListIngestionsResponse) Descriptor() ([]byte, []int) {
	return file_docanchor_v1_docanchor_proto_rawDescGZIP(), []int{6}
}

func (x *ListIngestionsResponse) GetRecords() []*IngestionRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

type ResumeIngestionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResumeIngestionRequest) Reset() {
	*x = ResumeIngestionRequest{}
	mi := &file_docanchor_v1_docanchor_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResumeIngestionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResumeIngestionRequest) ProtoMessage() {}

func (x *ResumeIngestionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docanchor_v1_docanchor_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResumeIngestionRequest.ProtoReflect.Descriptor instead.
func (*ResumeIngestionRequest) Descriptor() ([]byte, []int) {
	return file_docanchor_v1_docanchor_proto_rawDescGZIP(), []int{7}
}

func (x *ResumeIngestionRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type ResumeIngestionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Record        *IngestionRecord       `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResumeIngestionResponse) Reset() {
	*x = ResumeIngestionResponse{}
	mi := &file_docanchor_v1_docanchor_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResumeIngestionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResumeIngestionResponse) ProtoMessage() {}

func (x *ResumeIngestionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docanchor_v1_docanchor_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResumeIngestionResponse.ProtoReflect.Descriptor instead.
func (*ResumeIngestionResponse) Descriptor() ([]byte, []int) {
	return file_docanchor_v1_docanchor_proto_rawDescGZIP(), []int{8}
}

func (x *ResumeIngestionResponse) GetRecord() *IngestionRecord {
	if x != nil {
		return x.Record
	}
	return nil
}

type VerifyIngestionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifyIngestionRequest) Reset() {
	*x = VerifyIngestionRequest{}
	mi := &file_docanchor_v1_docanchor_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyIngestionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyIngestionRequest) ProtoMessage() {}

func (x *VerifyIngestionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docanchor_v1_docanchor_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyIngestionRequest.ProtoReflect.Descriptor instead.
func (*VerifyIngestionRequest) Descriptor() ([]byte, []int) {
	return file_docanchor_v1_docanchor_proto_rawDescGZIP(), []int{9}
}

func (x *VerifyIngestionRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type VerifyIngestionResponse struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	Record                *IngestionRecord       `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
	Verified              bool                   `protobuf:"varint,2,opt,name=verified,proto3" json:"verified,omitempty"`
	RecomputedFingerprint string                 `protobuf:"bytes,3,opt,name=recomputed_fingerprint,json=recomputedFingerprint,proto3" json:"recomputed_fingerprint,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *VerifyIngestionResponse) Reset() {
	*x = VerifyIngestionResponse{}
	mi := &file_docanchor_v1_docanchor_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyIngestionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyIngestionResponse) ProtoMessage() {}

func (x *VerifyIngestionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docanchor_v1_docanchor_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyIngestionResponse.ProtoReflect.Descriptor instead.
func (*VerifyIngestionResponse) Descriptor() ([]byte, []int) {
	return file_docanchor_v1_docanchor_proto_rawDescGZIP(), []int{10}
}

func (x *VerifyIngestionResponse) GetRecord() *IngestionRecord {
	if x != nil {
		return x.Record
	}
	return nil
}

func (x *VerifyIngestionResponse) GetVerified() bool {
	if x != nil {
		return x.Verified
	}
	return false
}

func (x *VerifyIngestionResponse) GetRecomputedFingerprint() string {
	if x != nil {
		return x.RecomputedFingerprint
	}
	return ""
}

type ExportHistoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Subject       string                 `protobuf:"bytes,1,opt,name=subject,proto3" json:"subject,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportHistoryRequest) Reset() {
	*x = ExportHistoryRequest{}
	mi := &file_docanchor_v1_docanchor_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportHistoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportHistoryRequest) ProtoMessage() {}

func (x *ExportHistoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docanchor_v1_docanchor_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportHistoryRequest.ProtoReflect.Descriptor instead.
func (*ExportHistoryRequest) Descriptor() ([]byte, []int) {
	return file_docanchor_v1_docanchor_proto_rawDescGZIP(), []int{11}
}

func (x *ExportHistoryRequest) GetSubject() string {
	if x != nil {
		return x.Subject
	}
	return ""
}

type ExportHistoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportHistoryResponse) Reset() {
	*x = ExportHistoryResponse{}
	mi := &file_docanchor_v1_docanchor_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportHistoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportHistoryResponse) ProtoMessage() {}

func (x *ExportHistoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docanchor_v1_docanchor_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportHistoryResponse.ProtoReflect.Descriptor instead.
func (*ExportHistoryResponse) Descriptor() ([]byte, []int) {
	return file_docanchor_v1_docanchor_proto_rawDescGZIP(), []int{12}
}

func (x *ExportHistoryResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_docanchor_v1_docanchor_proto protoreflect.FileDescriptor

const file_docanchor_v1_docanchor_proto_rawDesc = "" +
	"\n" +
	"\x1cdocanchor/v1/docanchor.proto\x12\fdocanchor.v1\"\xc0\x02\n" +
	"\x0fIngestionRecord\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x18\n" +
	"\asubject\x18\x02 \x01(\tR\asubject\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12 \n" +
	"\vfingerprint\x18\x04 \x01(\tR\vfingerprint\x12\x10\n" +
	"\x03cid\x18\x05 \x01(\tR\x03cid\x12\x17\n" +
	"\atx_hash\x18\x06 \x01(\tR\x06txHash\x12!\n" +
	"\fblock_number\x18\a \x01(\x04R\vblockNumber\x12\x16\n" +
	"\x06status\x18\b \x01(\tR\x06status\x12!\n" +
	"\ffailure_hint\x18\t \x01(\tR\vfailureHint\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\v \x01(\tR\tupdatedAt\"g\n" +
	"\x15UploadDocumentRequest\x12\x18\n" +
	"\asubject\x18\x01 \x01(\tR\asubject\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent\"O\n" +
	"\x16UploadDocumentResponse\x125\n" +
	"\x06record\x18\x01 \x01(\v2\x1d.docanchor.v1.IngestionRecordR\x06record\"%\n" +
	"\x13GetIngestionRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"M\n" +
	"\x14GetIngestionResponse\x125\n" +
	"\x06record\x18\x01 \x01(\v2\x1d.docanchor.v1.IngestionRecordR\x06record\"S\n" +
	"\x15ListIngestionsRequest\x12\x18\n" +
	"\asubject\x18\x01 \x01(\tR\asubject\x12 \n" +
	"\vfingerprint\x18\x02 \x01(\tR\vfingerprint\"Q\n" +
	"\x16ListIngestionsResponse\x127\n" +
	"\arecords\x18\x01 \x03(\v2\x1d.docanchor.v1.IngestionRecordR\arecords\"(\n" +
	"\x16ResumeIngestionRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"P\n" +
	"\x17ResumeIngestionResponse\x125\n" +
	"\x06record\x18\x01 \x01(\v2\x1d.docanchor.v1.IngestionRecordR\x06record\"(\n" +
	"\x16VerifyIngestionRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\xa3\x01\n" +
	"\x17VerifyIngestionResponse\x125\n" +
	"\x06record\x18\x01 \x01(\v2\x1d.docanchor.v1.IngestionRecordR\x06record\x12\x1a\n" +
	"\bverified\x18\x02 \x01(\bR\bverified\x125\n" +
	"\x16recomputed_fingerprint\x18\x03 \x01(\tR\x15recomputedFingerprint\"0\n" +
	"\x14ExportHistoryRequest\x12\x18\n" +
	"\asubject\x18\x01 \x01(\tR\asubject\"+\n" +
	"\x15ExportHistoryResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xbd\x04\n" +
	"\x10DocAnchorService\x12[\n" +
	"\x0eUploadDocument\x12#.docanchor.v1.UploadDocumentRequest\x1a$.docanchor.v1.UploadDocumentResponse\x12U\n" +
	"\fGetIngestion\x12!.docanchor.v1.GetIngestionRequest\x1a\".docanchor.v1.GetIngestionResponse\x12[\n" +
	"\x0eListIngestions\x12#.docanchor.v1.ListIngestionsRequest\x1a$.docanchor.v1.ListIngestionsResponse\x12^\n" +
	"\x0fResumeIngestion\x12$.docanchor.v1.ResumeIngestionRequest\x1a%.docanchor.v1.ResumeIngestionResponse\x12^\n" +
	"\x0fVerifyIngestion\x12$.docanchor.v1.VerifyIngestionRequest\x1a%.docanchor.v1.VerifyIngestionResponse\x12X\n" +
	"\rExportHistory\x12\".docanchor.v1.ExportHistoryRequest\x1a#.docanchor.v1.ExportHistoryResponseBBZ@github.com/medchain/docanchor/gen/proto/docanchor/v1;docanchorv1b\x06proto3"

var (
	file_docanchor_v1_docanchor_proto_rawDescOnce sync.Once
	file_docanchor_v1_docanchor_proto_rawDescData []byte
)

func file_docanchor_v1_docanchor_proto_rawDescGZIP() []byte {
	file_docanchor_v1_docanchor_proto_rawDescOnce.Do(func() {
		file_docanchor_v1_docanchor_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_docanchor_v1_docanchor_proto_rawDesc), len(file_docanchor_v1_docanchor_proto_rawDesc)))
	})
	return file_docanchor_v1_docanchor_proto_rawDescData
}

var file_docanchor_v1_docanchor_proto_msgTypes = make([]protoimpl.MessageInfo, 13)
var file_docanchor_v1_docanchor_proto_goTypes = []any{
	(*IngestionRecord)(nil),         // 0: docanchor.v1.IngestionRecord
	(*UploadDocumentRequest)(nil),   // 1: docanchor.v1.UploadDocumentRequest
	(*UploadDocumentResponse)(nil),  // 2: docanchor.v1.UploadDocumentResponse
	(*GetIngestionRequest)(nil),     // 3: docanchor.v1.GetIngestionRequest
	(*GetIngestionResponse)(nil),    // 4: docanchor.v1.GetIngestionResponse
	(*ListIngestionsRequest)(nil),   // 5: docanchor.v1.ListIngestionsRequest
	(*ListIngestionsResponse)(nil),  // 6: docanchor.v1.ListIngestionsResponse
	(*ResumeIngestionRequest)(nil),  // 7: docanchor.v1.ResumeIngestionRequest
	(*ResumeIngestionResponse)(nil), // 8: docanchor.v1.ResumeIngestionResponse
	(*VerifyIngestionRequest)(nil),  // 9: docanchor.v1.VerifyIngestionRequest
	(*VerifyIngestionResponse)(nil), // 10: docanchor.v1.VerifyIngestionResponse
	(*ExportHistoryRequest)(nil),    // 11: docanchor.v1.ExportHistoryRequest
	(*ExportHistoryResponse)(nil),   // 12: docanchor.v1.ExportHistoryResponse
}
var file_docanchor_v1_docanchor_proto_depIdxs = []int32{
	0,  // 0: docanchor.v1.UploadDocumentResponse.record:type_name -> docanchor.v1.IngestionRecord
	0,  // 1: docanchor.v1.GetIngestionResponse.record:type_name -> docanchor.v1.IngestionRecord
	0,  // 2: docanchor.v1.ListIngestionsResponse.records:type_name -> docanchor.v1.IngestionRecord
	0,  // 3: docanchor.v1.ResumeIngestionResponse.record:type_name -> docanchor.v1.IngestionRecord
	0,  // 4: docanchor.v1.VerifyIngestionResponse.record:type_name -> docanchor.v1.IngestionRecord
	1,  // 5: docanchor.v1.DocAnchorService.UploadDocument:input_type -> docanchor.v1.UploadDocumentRequest
	3,  // 6: docanchor.v1.DocAnchorService.GetIngestion:input_type -> docanchor.v1.GetIngestionRequest
	5,  // 7: docanchor.v1.DocAnchorService.ListIngestions:input_type -> docanchor.v1.ListIngestionsRequest
	7,  // 8: docanchor.v1.DocAnchorService.ResumeIngestion:input_type -> docanchor.v1.ResumeIngestionRequest
	9,  // 9: docanchor.v1.DocAnchorService.VerifyIngestion:input_type -> docanchor.v1.VerifyIngestionRequest
	11, // 10: docanchor.v1.DocAnchorService.ExportHistory:input_type -> docanchor.v1.ExportHistoryRequest
	2,  // 11: docanchor.v1.DocAnchorService.UploadDocument:output_type -> docanchor.v1.UploadDocumentResponse
	4,  // 12: docanchor.v1.DocAnchorService.GetIngestion:output_type -> docanchor.v1.GetIngestionResponse
	6,  // 13: docanchor.v1.DocAnchorService.ListIngestions:output_type -> docanchor.v1.ListIngestionsResponse
	8,  // 14: docanchor.v1.DocAnchorService.ResumeIngestion:output_type -> docanchor.v1.ResumeIngestionResponse
	10, // 15: docanchor.v1.DocAnchorService.VerifyIngestion:output_type -> docanchor.v1.VerifyIngestionResponse
	12, // 16: docanchor.v1.DocAnchorService.ExportHistory:output_type -> docanchor.v1.ExportHistoryResponse
	11, // [11:17] is the sub-list for method output_type
	5,  // [5:11] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_docanchor_v1_docanchor_proto_init() }
func file_docanchor_v1_docanchor_proto_init() {
	if File_docanchor_v1_docanchor_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_docanchor_v1_docanchor_proto_rawDesc), len(file_docanchor_v1_docanchor_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   13,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_docanchor_v1_docanchor_proto_goTypes,
		DependencyIndexes: file_docanchor_v1_docanchor_proto_depIdxs,
		MessageInfos:      file_docanchor_v1_docanchor_proto_msgTypes,
	}.Build()
	File_docanchor_v1_docanchor_proto = out.File
	file_docanchor_v1_docanchor_proto_goTypes = nil
	file_docanchor_v1_docanchor_proto_depIdxs = nil
}
