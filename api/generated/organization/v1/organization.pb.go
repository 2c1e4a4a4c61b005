// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: organization/v1/organization.proto

package organizationv1

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

type Organization struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Slug          string                 `protobuf:"bytes,3,opt,name=slug,proto3" json:"slug,omitempty"`
	Logo          string                 `protobuf:"bytes,4,opt,name=logo,proto3" json:"logo,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Organization) Reset() {
	*x = Organization{}
	mi := &file_organization_v1_organization_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Organization) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Organization) ProtoMessage() {}

func (x *Organization) ProtoReflect() protoreflect.Message {
	mi := &file_organization_v1_organization_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Organization.ProtoReflect.Descriptor instead.
func (*Organization) Descriptor() ([]byte, []int) {
	return file_organization_v1_organization_proto_rawDescGZIP(), []int{0}
}

func (x *Organization) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Organization) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Organization) GetSlug() string {
	if x != nil {
		return x.Slug
	}
	return ""
}

func (x *Organization) GetLogo() string {
	if x != nil {
		return x.Logo
	}
	return ""
}

func (x *Organization) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type CreateOrganizationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Slug          string                 `protobuf:"bytes,2,opt,name=slug,proto3" json:"slug,omitempty"`
	Logo          string                 `protobuf:"bytes,3,opt,name=logo,proto3" json:"logo,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateOrganizationRequest) Reset() {
	*x = CreateOrganizationRequest{}
	mi := &file_organization_v1_organization_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateOrganizationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateOrganizationRequest) ProtoMessage() {}

func (x *CreateOrganizationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_organization_v1_organization_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateOrganizationRequest.ProtoReflect.Descriptor instead.
func (*CreateOrganizationRequest) Descriptor() ([]byte, []int) {
	return file_organization_v1_organization_proto_rawDescGZIP(), []int{1}
}

func (x *CreateOrganizationRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateOrganizationRequest) GetSlug() string {
	if x != nil {
		return x.Slug
	}
	return ""
}

func (x *CreateOrganizationRequest) GetLogo() string {
	if x != nil {
		return x.Logo
	}
	return ""
}

type CreateOrganizationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Organization  *Organization          `protobuf:"bytes,1,opt,name=organization,proto3" json:"organization,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateOrganizationResponse) Reset() {
	*x = CreateOrganizationResponse{}
	mi := &file_organization_v1_organization_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateOrganizationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateOrganizationResponse) ProtoMessage() {}

func (x *CreateOrganizationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_organization_v1_organization_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateOrganizationResponse.ProtoReflect.Descriptor instead.
func (*CreateOrganizationResponse) Descriptor() ([]byte, []int) {
	return file_organization_v1_organization_proto_rawDescGZIP(), []int{2}
}

func (x *CreateOrganizationResponse) GetOrganization() *Organization {
	if x != nil {
		return x.Organization
	}
	return nil
}

type GetOrganizationRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Defaults to the caller's active organization when empty.
	OrgId         string `protobuf:"bytes,1,opt,name=org_id,json=orgId,proto3" json:"org_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOrganizationRequest) Reset() {
	*x = GetOrganizationRequest{}
	mi := &file_organization_v1_organization_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOrganizationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOrganizationRequest) ProtoMessage() {}

func (x *GetOrganizationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_organization_v1_organization_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOrganizationRequest.ProtoReflect.Descriptor instead.
func (*GetOrganizationRequest) Descriptor() ([]byte, []int) {
	return file_organization_v1_organization_proto_rawDescGZIP(), []int{3}
}

func (x *GetOrganizationRequest) GetOrgId() string {
	if x != nil {
		return x.OrgId
	}
	return ""
}

type GetOrganizationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Organization  *Organization          `protobuf:"bytes,1,opt,name=organization,proto3" json:"organization,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOrganizationResponse) Reset() {
	*x = GetOrganizationResponse{}
	mi := &file_organization_v1_organization_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOrganizationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOrganizationResponse) ProtoMessage() {}

func (x *GetOrganizationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_organization_v1_organization_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOrganizationResponse.ProtoReflect.Descriptor instead.
func (*GetOrganizationResponse) Descriptor() ([]byte, []int) {
	return file_organization_v1_organization_proto_rawDescGZIP(), []int{4}
}

func (x *GetOrganizationResponse) GetOrganization() *Organization {
	if x != nil {
		return x.Organization
	}
	return nil
}

type ListMyOrganizationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMyOrganizationsRequest) Reset() {
	*x = ListMyOrganizationsRequest{}
	mi := &file_organization_v1_organization_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMyOrganizationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMyOrganizationsRequest) ProtoMessage() {}

func (x *ListMyOrganizationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_organization_v1_organization_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMyOrganizationsRequest.ProtoReflect.Descriptor instead.
func (*ListMyOrganizationsRequest) Descriptor() ([]byte, []int) {
	return file_organization_v1_organization_proto_rawDescGZIP(), []int{5}
}

type ListMyOrganizationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Organizations []*Organization        `protobuf:"bytes,1,rep,name=organizations,proto3" json:"organizations,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMyOrganizationsResponse) Reset() {
	*x = ListMyOrganizationsResponse{}
	mi := &file_organization_v1_organization_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMyOrganizationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMyOrganizationsResponse) ProtoMessage() {}

func (x *ListMyOrganizationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_organization_v1_organization_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMyOrganizationsResponse.ProtoReflect.Descriptor instead.
func (*ListMyOrganizationsResponse) Descriptor() ([]byte, []int) {
	return file_organization_v1_organization_proto_rawDescGZIP(), []int{6}
}

func (x *ListMyOrganizationsResponse) GetOrganizations() []*Organization {
	if x != nil {
		return x.Organizations
	}
	return nil
}

var File_organization_v1_organization_proto protoreflect.FileDescriptor

const file_organization_v1_organization_proto_rawDesc = "" +
	"\n" +
	"\"organization/v1/organization.proto\x12\x19teamspace.organization.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\x95\x01\n" +
	"\fOrganization\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x12\n" +
	"\x04slug\x18\x03 \x01(\tR\x04slug\x12\x12\n" +
	"\x04logo\x18\x04 \x01(\tR\x04logo\x129\n" +
	"\n" +
	"created_at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\"W\n" +
	"\x19CreateOrganizationRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x12\n" +
	"\x04slug\x18\x02 \x01(\tR\x04slug\x12\x12\n" +
	"\x04logo\x18\x03 \x01(\tR\x04logo\"i\n" +
	"\x1aCreateOrganizationResponse\x12K\n" +
	"\forganization\x18\x01 \x01(\v2'.teamspace.organization.v1.OrganizationR\forganization\"/\n" +
	"\x16GetOrganizationRequest\x12\x15\n" +
	"\x06org_id\x18\x01 \x01(\tR\x05orgId\"f\n" +
	"\x17GetOrganizationResponse\x12K\n" +
	"\forganization\x18\x01 \x01(\v2'.teamspace.organization.v1.OrganizationR\forganization\"\x1c\n" +
	"\x1aListMyOrganizationsRequest\"l\n" +
	"\x1bListMyOrganizationsResponse\x12M\n" +
	"\rorganizations\x18\x01 \x03(\v2'.teamspace.organization.v1.OrganizationR\rorganizations2\x9a\x03\n" +
	"\x13OrganizationService\x12\x81\x01\n" +
	"\x12CreateOrganization\x124.teamspace.organization.v1.CreateOrganizationRequest\x1a5.teamspace.organization.v1.CreateOrganizationResponse\x12x\n" +
	"\x0fGetOrganization\x121.teamspace.organization.v1.GetOrganizationRequest\x1a2.teamspace.organization.v1.GetOrganizationResponse\x12\x84\x01\n" +
	"\x13ListMyOrganizations\x125.teamspace.organization.v1.ListMyOrganizationsRequest\x1a6.teamspace.organization.v1.ListMyOrganizationsResponseB@Z>teamspace/backend/api/generated/organization/v1;organizationv1b\x06proto3"

var (
	file_organization_v1_organization_proto_rawDescOnce sync.Once
	file_organization_v1_organization_proto_rawDescData []byte
)

func file_organization_v1_organization_proto_rawDescGZIP() []byte {
	file_organization_v1_organization_proto_rawDescOnce.Do(func() {
		file_organization_v1_organization_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_organization_v1_organization_proto_rawDesc), len(file_organization_v1_organization_proto_rawDesc)))
	})
	return file_organization_v1_organization_proto_rawDescData
}

var file_organization_v1_organization_proto_msgTypes = make([]protoimpl.MessageInfo, 7)
var file_organization_v1_organization_proto_goTypes = []any{
	(*Organization)(nil),                // 0: teamspace.organization.v1.Organization
	(*CreateOrganizationRequest)(nil),   // 1: teamspace.organization.v1.CreateOrganizationRequest
	(*CreateOrganizationResponse)(nil),  // 2: teamspace.organization.v1.CreateOrganizationResponse
	(*GetOrganizationRequest)(nil),      // 3: teamspace.organization.v1.GetOrganizationRequest
	(*GetOrganizationResponse)(nil),     // 4: teamspace.organization.v1.GetOrganizationResponse
	(*ListMyOrganizationsRequest)(nil),  // 5: teamspace.organization.v1.ListMyOrganizationsRequest
	(*ListMyOrganizationsResponse)(nil), // 6: teamspace.organization.v1.ListMyOrganizationsResponse
	(*timestamppb.Timestamp)(nil),       // 7: google.protobuf.Timestamp
}
var file_organization_v1_organization_proto_depIdxs = []int32{
	7, // 0: teamspace.organization.v1.Organization.created_at:type_name -> google.protobuf.Timestamp
	0, // 1: teamspace.organization.v1.CreateOrganizationResponse.organization:type_name -> teamspace.organization.v1.Organization
	0, // 2: teamspace.organization.v1.GetOrganizationResponse.organization:type_name -> teamspace.organization.v1.Organization
	0, // 3: teamspace.organization.v1.ListMyOrganizationsResponse.organizations:type_name -> teamspace.organization.v1.Organization
	1, // 4: teamspace.organization.v1.OrganizationService.CreateOrganization:input_type -> teamspace.organization.v1.CreateOrganizationRequest
	3, // 5: teamspace.organization.v1.OrganizationService.GetOrganization:input_type -> teamspace.organization.v1.GetOrganizationRequest
	5, // 6: teamspace.organization.v1.OrganizationService.ListMyOrganizations:input_type -> teamspace.organization.v1.ListMyOrganizationsRequest
	2, // 7: teamspace.organization.v1.OrganizationService.CreateOrganization:output_type -> teamspace.organization.v1.CreateOrganizationResponse
	4, // 8: teamspace.organization.v1.OrganizationService.GetOrganization:output_type -> teamspace.organization.v1.GetOrganizationResponse
	6, // 9: teamspace.organization.v1.OrganizationService.ListMyOrganizations:output_type -> teamspace.organization.v1.ListMyOrganizationsResponse
	7, // [7:10] is the sub-list for method output_type
	4, // [4:7] is the sub-list for method input_type
	4, // [4:4] is the sub-list for extension type_name
	4, // [4:4] is the sub-list for extension extendee
	0, // [0:4] is the sub-list for field type_name
}

func init() { file_organization_v1_organization_proto_init() }
func file_organization_v1_organization_proto_init() {
	if File_organization_v1_organization_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_organization_v1_organization_proto_rawDesc), len(file_organization_v1_organization_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   7,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_organization_v1_organization_proto_goTypes,
		DependencyIndexes: file_organization_v1_organization_proto_depIdxs,
		MessageInfos:      file_organization_v1_organization_proto_msgTypes,
	}.Build()
	File_organization_v1_organization_proto = out.File
	file_organization_v1_organization_proto_goTypes = nil
	file_organization_v1_organization_proto_depIdxs = nil
}
