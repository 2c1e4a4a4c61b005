// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: telemetry/v1/telemetry.proto

package telemetryv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
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

type TelemetryEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrgId         string                 `protobuf:"bytes,1,opt,name=org_id,json=orgId,proto3" json:"org_id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	SessionId     string                 `protobuf:"bytes,3,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	EventType     string                 `protobuf:"bytes,4,opt,name=event_type,json=eventType,proto3" json:"event_type,omitempty"`
	Source        string                 `protobuf:"bytes,5,opt,name=source,proto3" json:"source,omitempty"`
	Metadata      []byte                 `protobuf:"bytes,6,opt,name=metadata,proto3" json:"metadata,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TelemetryEvent) Reset() {
	*x = TelemetryEvent{}
	mi := &file_telemetry_v1_telemetry_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TelemetryEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TelemetryEvent) ProtoMessage() {}

func (x *TelemetryEvent) ProtoReflect() protoreflect.Message {
	mi := &file_telemetry_v1_telemetry_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TelemetryEvent.ProtoReflect.Descriptor instead.
func (*TelemetryEvent) Descriptor() ([]byte, []int) {
	return file_telemetry_v1_telemetry_proto_rawDescGZIP(), []int{0}
}

func (x *TelemetryEvent) GetOrgId() string {
	if x != nil {
		return x.OrgId
	}
	return ""
}

func (x *TelemetryEvent) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *TelemetryEvent) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *TelemetryEvent) GetEventType() string {
	if x != nil {
		return x.EventType
	}
	return ""
}

func (x *TelemetryEvent) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *TelemetryEvent) GetMetadata() []byte {
	if x != nil {
		return x.Metadata
	}
	return nil
}

func (x *TelemetryEvent) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type EmitTelemetryEventRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrgId         string                 `protobuf:"bytes,1,opt,name=org_id,json=orgId,proto3" json:"org_id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	SessionId     string                 `protobuf:"bytes,3,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	EventType     string                 `protobuf:"bytes,4,opt,name=event_type,json=eventType,proto3" json:"event_type,omitempty"`
	Source        string                 `protobuf:"bytes,5,opt,name=source,proto3" json:"source,omitempty"`
	Metadata      []byte                 `protobuf:"bytes,6,opt,name=metadata,proto3" json:"metadata,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EmitTelemetryEventRequest) Reset() {
	*x = EmitTelemetryEventRequest{}
	mi := &file_telemetry_v1_telemetry_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EmitTelemetryEventRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EmitTelemetryEventRequest) ProtoMessage() {}

func (x *EmitTelemetryEventRequest) ProtoReflect() protoreflect.Message {
	mi := &file_telemetry_v1_telemetry_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EmitTelemetryEventRequest.ProtoReflect.Descriptor instead.
func (*EmitTelemetryEventRequest) Descriptor() ([]byte, []int) {
	return file_telemetry_v1_telemetry_proto_rawDescGZIP(), []int{1}
}

func (x *EmitTelemetryEventRequest) GetOrgId() string {
	if x != nil {
		return x.OrgId
	}
	return ""
}

func (x *EmitTelemetryEventRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *EmitTelemetryEventRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *EmitTelemetryEventRequest) GetEventType() string {
	if x != nil {
		return x.EventType
	}
	return ""
}

func (x *EmitTelemetryEventRequest) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *EmitTelemetryEventRequest) GetMetadata() []byte {
	if x != nil {
		return x.Metadata
	}
	return nil
}

type EmitTelemetryEventResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EmitTelemetryEventResponse) Reset() {
	*x = EmitTelemetryEventResponse{}
	mi := &file_telemetry_v1_telemetry_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EmitTelemetryEventResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EmitTelemetryEventResponse) ProtoMessage() {}

func (x *EmitTelemetryEventResponse) ProtoReflect() protoreflect.Message {
	mi := &file_telemetry_v1_telemetry_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EmitTelemetryEventResponse.ProtoReflect.Descriptor instead.
func (*EmitTelemetryEventResponse) Descriptor() ([]byte, []int) {
	return file_telemetry_v1_telemetry_proto_rawDescGZIP(), []int{2}
}

type BatchEmitTelemetryRequest struct {
	state         protoimpl.MessageState       `protogen:"open.v1"`
	Events        []*EmitTelemetryEventRequest `protobuf:"bytes,1,rep,name=events,proto3" json:"events,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BatchEmitTelemetryRequest) Reset() {
	*x = BatchEmitTelemetryRequest{}
	mi := &file_telemetry_v1_telemetry_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BatchEmitTelemetryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BatchEmitTelemetryRequest) ProtoMessage() {}

func (x *BatchEmitTelemetryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_telemetry_v1_telemetry_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BatchEmitTelemetryRequest.ProtoReflect.Descriptor instead.
func (*BatchEmitTelemetryRequest) Descriptor() ([]byte, []int) {
	return file_telemetry_v1_telemetry_proto_rawDescGZIP(), []int{3}
}

func (x *BatchEmitTelemetryRequest) GetEvents() []*EmitTelemetryEventRequest {
	if x != nil {
		return x.Events
	}
	return nil
}

type BatchEmitTelemetryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BatchEmitTelemetryResponse) Reset() {
	*x = BatchEmitTelemetryResponse{}
	mi := &file_telemetry_v1_telemetry_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BatchEmitTelemetryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BatchEmitTelemetryResponse) ProtoMessage() {}

func (x *BatchEmitTelemetryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_telemetry_v1_telemetry_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BatchEmitTelemetryResponse.ProtoReflect.Descriptor instead.
func (*BatchEmitTelemetryResponse) Descriptor() ([]byte, []int) {
	return file_telemetry_v1_telemetry_proto_rawDescGZIP(), []int{4}
}

var File_telemetry_v1_telemetry_proto protoreflect.FileDescriptor

const file_telemetry_v1_telemetry_proto_rawDesc = "" +
	"\n" +
	"\x1ctelemetry/v1/telemetry.proto\x12\x16teamspace.telemetry.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\xed\x01\n" +
	"\x0eTelemetryEvent\x12\x15\n" +
	"\x06org_id\x18\x01 \x01(\tR\x05orgId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x1d\n" +
	"\n" +
	"session_id\x18\x03 \x01(\tR\tsessionId\x12\x1d\n" +
	"\n" +
	"event_type\x18\x04 \x01(\tR\teventType\x12\x16\n" +
	"\x06source\x18\x05 \x01(\tR\x06source\x12\x1a\n" +
	"\bmetadata\x18\x06 \x01(\fR\bmetadata\x129\n" +
	"\n" +
	"created_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\"\xbd\x01\n" +
	"\x19EmitTelemetryEventRequest\x12\x15\n" +
	"\x06org_id\x18\x01 \x01(\tR\x05orgId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x1d\n" +
	"\n" +
	"session_id\x18\x03 \x01(\tR\tsessionId\x12\x1d\n" +
	"\n" +
	"event_type\x18\x04 \x01(\tR\teventType\x12\x16\n" +
	"\x06source\x18\x05 \x01(\tR\x06source\x12\x1a\n" +
	"\bmetadata\x18\x06 \x01(\fR\bmetadata\"\x1c\n" +
	"\x1aEmitTelemetryEventResponse\"f\n" +
	"\x19BatchEmitTelemetryRequest\x12I\n" +
	"\x06events\x18\x01 \x03(\v21.teamspace.telemetry.v1.EmitTelemetryEventRequestR\x06events\"\x1c\n" +
	"\x1aBatchEmitTelemetryResponse2\x8c\x02\n" +
	"\x10TelemetryService\x12{\n" +
	"\x12EmitTelemetryEvent\x121.teamspace.telemetry.v1.EmitTelemetryEventRequest\x1a2.teamspace.telemetry.v1.EmitTelemetryEventResponse\x12{\n" +
	"\x12BatchEmitTelemetry\x121.teamspace.telemetry.v1.BatchEmitTelemetryRequest\x1a2.teamspace.telemetry.v1.BatchEmitTelemetryResponseB:Z8teamspace/backend/api/generated/telemetry/v1;telemetryv1b\x06proto3"

var (
	file_telemetry_v1_telemetry_proto_rawDescOnce sync.Once
	file_telemetry_v1_telemetry_proto_rawDescData []byte
)

func file_telemetry_v1_telemetry_proto_rawDescGZIP() []byte {
	file_telemetry_v1_telemetry_proto_rawDescOnce.Do(func() {
		file_telemetry_v1_telemetry_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_telemetry_v1_telemetry_proto_rawDesc), len(file_telemetry_v1_telemetry_proto_rawDesc)))
	})
	return file_telemetry_v1_telemetry_proto_rawDescData
}

var file_telemetry_v1_telemetry_proto_msgTypes = make([]protoimpl.MessageInfo, 5)
var file_telemetry_v1_telemetry_proto_goTypes = []any{
	(*TelemetryEvent)(nil),             // 0: teamspace.telemetry.v1.TelemetryEvent
	(*EmitTelemetryEventRequest)(nil),  // 1: teamspace.telemetry.v1.EmitTelemetryEventRequest
	(*EmitTelemetryEventResponse)(nil), // 2: teamspace.telemetry.v1.EmitTelemetryEventResponse
	(*BatchEmitTelemetryRequest)(nil),  // 3: teamspace.telemetry.v1.BatchEmitTelemetryRequest
	(*BatchEmitTelemetryResponse)(nil), // 4: teamspace.telemetry.v1.BatchEmitTelemetryResponse
	(*timestamppb.Timestamp)(nil),      // 5: google.protobuf.Timestamp
}
var file_telemetry_v1_telemetry_proto_depIdxs = []int32{
	5, // 0: teamspace.telemetry.v1.TelemetryEvent.created_at:type_name -> google.protobuf.Timestamp
	1, // 1: teamspace.telemetry.v1.BatchEmitTelemetryRequest.events:type_name -> teamspace.telemetry.v1.EmitTelemetryEventRequest
	1, // 2: teamspace.telemetry.v1.TelemetryService.EmitTelemetryEvent:input_type -> teamspace.telemetry.v1.EmitTelemetryEventRequest
	3, // 3: teamspace.telemetry.v1.TelemetryService.BatchEmitTelemetry:input_type -> teamspace.telemetry.v1.BatchEmitTelemetryRequest
	2, // 4: teamspace.telemetry.v1.TelemetryService.EmitTelemetryEvent:output_type -> teamspace.telemetry.v1.EmitTelemetryEventResponse
	4, // 5: teamspace.telemetry.v1.TelemetryService.BatchEmitTelemetry:output_type -> teamspace.telemetry.v1.BatchEmitTelemetryResponse
	4, // [4:6] is the sub-list for method output_type
	2, // [2:4] is the sub-list for method input_type
	2, // [2:2] is the sub-list for extension type_name
	2, // [2:2] is the sub-list for extension extendee
	0, // [0:2] is the sub-list for field type_name
}

func init() { file_telemetry_v1_telemetry_proto_init() }
func file_telemetry_v1_telemetry_proto_init() {
	if File_telemetry_v1_telemetry_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_telemetry_v1_telemetry_proto_rawDesc), len(file_telemetry_v1_telemetry_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   5,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_telemetry_v1_telemetry_proto_goTypes,
		DependencyIndexes: file_telemetry_v1_telemetry_proto_depIdxs,
		MessageInfos:      file_telemetry_v1_telemetry_proto_msgTypes,
	}.Build()
	File_telemetry_v1_telemetry_proto = out.File
	file_telemetry_v1_telemetry_proto_goTypes = nil
	file_telemetry_v1_telemetry_proto_depIdxs = nil
}
