// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: notification/v1/notification.proto

package notificationv1

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

type Notification struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Id                string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Type              string                 `protobuf:"bytes,2,opt,name=type,proto3" json:"type,omitempty"`
	Title             string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	Message           string                 `protobuf:"bytes,4,opt,name=message,proto3" json:"message,omitempty"`
	Priority          string                 `protobuf:"bytes,5,opt,name=priority,proto3" json:"priority,omitempty"`
	Scope             string                 `protobuf:"bytes,6,opt,name=scope,proto3" json:"scope,omitempty"`
	OwnerUserId       string                 `protobuf:"bytes,7,opt,name=owner_user_id,json=ownerUserId,proto3" json:"owner_user_id,omitempty"`
	OrgId             string                 `protobuf:"bytes,8,opt,name=org_id,json=orgId,proto3" json:"org_id,omitempty"`
	RelatedEntityId   string                 `protobuf:"bytes,9,opt,name=related_entity_id,json=relatedEntityId,proto3" json:"related_entity_id,omitempty"`
	RelatedEntityType string                 `protobuf:"bytes,10,opt,name=related_entity_type,json=relatedEntityType,proto3" json:"related_entity_type,omitempty"`
	Data              []byte                 `protobuf:"bytes,11,opt,name=data,proto3" json:"data,omitempty"`
	ActionUrl         string                 `protobuf:"bytes,12,opt,name=action_url,json=actionUrl,proto3" json:"action_url,omitempty"`
	IsRead            bool                   `protobuf:"varint,13,opt,name=is_read,json=isRead,proto3" json:"is_read,omitempty"`
	ReadAt            *timestamppb.Timestamp `protobuf:"bytes,14,opt,name=read_at,json=readAt,proto3" json:"read_at,omitempty"`
	CreatedBy         string                 `protobuf:"bytes,15,opt,name=created_by,json=createdBy,proto3" json:"created_by,omitempty"`
	CreatedAt         *timestamppb.Timestamp `protobuf:"bytes,16,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	ExpiresAt         *timestamppb.Timestamp `protobuf:"bytes,17,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *Notification) Reset() {
	*x = Notification{}
	mi := &file_notification_v1_notification_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Notification) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Notification) ProtoMessage() {}

func (x *Notification) ProtoReflect() protoreflect.Message {
	mi := &file_notification_v1_notification_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Notification.ProtoReflect.Descriptor instead.
func (*Notification) Descriptor() ([]byte, []int) {
	return file_notification_v1_notification_proto_rawDescGZIP(), []int{0}
}

func (x *Notification) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Notification) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *Notification) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Notification) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *Notification) GetPriority() string {
	if x != nil {
		return x.Priority
	}
	return ""
}

func (x *Notification) GetScope() string {
	if x != nil {
		return x.Scope
	}
	return ""
}

func (x *Notification) GetOwnerUserId() string {
	if x != nil {
		return x.OwnerUserId
	}
	return ""
}

func (x *Notification) GetOrgId() string {
	if x != nil {
		return x.OrgId
	}
	return ""
}

func (x *Notification) GetRelatedEntityId() string {
	if x != nil {
		return x.RelatedEntityId
	}
	return ""
}

func (x *Notification) GetRelatedEntityType() string {
	if x != nil {
		return x.RelatedEntityType
	}
	return ""
}

func (x *Notification) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

func (x *Notification) GetActionUrl() string {
	if x != nil {
		return x.ActionUrl
	}
	return ""
}

func (x *Notification) GetIsRead() bool {
	if x != nil {
		return x.IsRead
	}
	return false
}

func (x *Notification) GetReadAt() *timestamppb.Timestamp {
	if x != nil {
		return x.ReadAt
	}
	return nil
}

func (x *Notification) GetCreatedBy() string {
	if x != nil {
		return x.CreatedBy
	}
	return ""
}

func (x *Notification) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Notification) GetExpiresAt() *timestamppb.Timestamp {
	if x != nil {
		return x.ExpiresAt
	}
	return nil
}

type NotificationPreferences struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	EmailEnabled      bool                   `protobuf:"varint,1,opt,name=email_enabled,json=emailEnabled,proto3" json:"email_enabled,omitempty"`
	PushEnabled       bool                   `protobuf:"varint,2,opt,name=push_enabled,json=pushEnabled,proto3" json:"push_enabled,omitempty"`
	OrgAnnouncements  bool                   `protobuf:"varint,3,opt,name=org_announcements,json=orgAnnouncements,proto3" json:"org_announcements,omitempty"`
	DueDateReminders  bool                   `protobuf:"varint,4,opt,name=due_date_reminders,json=dueDateReminders,proto3" json:"due_date_reminders,omitempty"`
	DigestFrequency   string                 `protobuf:"bytes,5,opt,name=digest_frequency,json=digestFrequency,proto3" json:"digest_frequency,omitempty"`
	QuietHoursEnabled bool                   `protobuf:"varint,6,opt,name=quiet_hours_enabled,json=quietHoursEnabled,proto3" json:"quiet_hours_enabled,omitempty"`
	QuietHoursStart   string                 `protobuf:"bytes,7,opt,name=quiet_hours_start,json=quietHoursStart,proto3" json:"quiet_hours_start,omitempty"`
	QuietHoursEnd     string                 `protobuf:"bytes,8,opt,name=quiet_hours_end,json=quietHoursEnd,proto3" json:"quiet_hours_end,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *NotificationPreferences) Reset() {
	*x = NotificationPreferences{}
	mi := &file_notification_v1_notification_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NotificationPreferences) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NotificationPreferences) ProtoMessage() {}

func (x *NotificationPreferences) ProtoReflect() protoreflect.Message {
	mi := &file_notification_v1_notification_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NotificationPreferences.ProtoReflect.Descriptor instead.
func (*NotificationPreferences) Descriptor() ([]byte, []int) {
	return file_notification_v1_notification_proto_rawDescGZIP(), []int{1}
}

func (x *NotificationPreferences) GetEmailEnabled() bool {
	if x != nil {
		return x.EmailEnabled
	}
	return false
}

func (x *NotificationPreferences) GetPushEnabled() bool {
	if x != nil {
		return x.PushEnabled
	}
	return false
}

func (x *NotificationPreferences) GetOrgAnnouncements() bool {
	if x != nil {
		return x.OrgAnnouncements
	}
	return false
}

func (x *NotificationPreferences) GetDueDateReminders() bool {
	if x != nil {
		return x.DueDateReminders
	}
	return false
}

func (x *NotificationPreferences) GetDigestFrequency() string {
	if x != nil {
		return x.DigestFrequency
	}
	return ""
}

func (x *NotificationPreferences) GetQuietHoursEnabled() bool {
	if x != nil {
		return x.QuietHoursEnabled
	}
	return false
}

func (x *NotificationPreferences) GetQuietHoursStart() string {
	if x != nil {
		return x.QuietHoursStart
	}
	return ""
}

func (x *NotificationPreferences) GetQuietHoursEnd() string {
	if x != nil {
		return x.QuietHoursEnd
	}
	return ""
}

type CreateNotificationRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Type     string                 `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	Title    string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Message  string                 `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	Priority string                 `protobuf:"bytes,4,opt,name=priority,proto3" json:"priority,omitempty"`
	Scope    string                 `protobuf:"bytes,5,opt,name=scope,proto3" json:"scope,omitempty"`
	// Recipient for user-scoped notifications; defaults to the caller.
	TargetUserId      string                 `protobuf:"bytes,6,opt,name=target_user_id,json=targetUserId,proto3" json:"target_user_id,omitempty"`
	RelatedEntityId   string                 `protobuf:"bytes,7,opt,name=related_entity_id,json=relatedEntityId,proto3" json:"related_entity_id,omitempty"`
	RelatedEntityType string                 `protobuf:"bytes,8,opt,name=related_entity_type,json=relatedEntityType,proto3" json:"related_entity_type,omitempty"`
	Data              []byte                 `protobuf:"bytes,9,opt,name=data,proto3" json:"data,omitempty"`
	ActionUrl         string                 `protobuf:"bytes,10,opt,name=action_url,json=actionUrl,proto3" json:"action_url,omitempty"`
	ExpiresAt         *timestamppb.Timestamp `protobuf:"bytes,11,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *CreateNotificationRequest) Reset() {
	*x = CreateNotificationRequest{}
	mi := &file_notification_v1_notification_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateNotificationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateNotificationRequest) ProtoMessage() {}

func (x *CreateNotificationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_notification_v1_notification_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateNotificationRequest.ProtoReflect.Descriptor instead.
func (*CreateNotificationRequest) Descriptor() ([]byte, []int) {
	return file_notification_v1_notification_proto_rawDescGZIP(), []int{2}
}

func (x *CreateNotificationRequest) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *CreateNotificationRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *CreateNotificationRequest) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *CreateNotificationRequest) GetPriority() string {
	if x != nil {
		return x.Priority
	}
	return ""
}

func (x *CreateNotificationRequest) GetScope() string {
	if x != nil {
		return x.Scope
	}
	return ""
}

func (x *CreateNotificationRequest) GetTargetUserId() string {
	if x != nil {
		return x.TargetUserId
	}
	return ""
}

func (x *CreateNotificationRequest) GetRelatedEntityId() string {
	if x != nil {
		return x.RelatedEntityId
	}
	return ""
}

func (x *CreateNotificationRequest) GetRelatedEntityType() string {
	if x != nil {
		return x.RelatedEntityType
	}
	return ""
}

func (x *CreateNotificationRequest) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

func (x *CreateNotificationRequest) GetActionUrl() string {
	if x != nil {
		return x.ActionUrl
	}
	return ""
}

func (x *CreateNotificationRequest) GetExpiresAt() *timestamppb.Timestamp {
	if x != nil {
		return x.ExpiresAt
	}
	return nil
}

type CreateNotificationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Notification  *Notification          `protobuf:"bytes,1,opt,name=notification,proto3" json:"notification,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateNotificationResponse) Reset() {
	*x = CreateNotificationResponse{}
	mi := &file_notification_v1_notification_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateNotificationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateNotificationResponse) ProtoMessage() {}

func (x *CreateNotificationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_notification_v1_notification_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateNotificationResponse.ProtoReflect.Descriptor instead.
func (*CreateNotificationResponse) Descriptor() ([]byte, []int) {
	return file_notification_v1_notification_proto_rawDescGZIP(), []int{3}
}

func (x *CreateNotificationResponse) GetNotification() *Notification {
	if x != nil {
		return x.Notification
	}
	return nil
}

type ListNotificationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UnreadOnly    bool                   `protobuf:"varint,1,opt,name=unread_only,json=unreadOnly,proto3" json:"unread_only,omitempty"`
	Type          string                 `protobuf:"bytes,2,opt,name=type,proto3" json:"type,omitempty"`
	Limit         int32                  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListNotificationsRequest) Reset() {
	*x = ListNotificationsRequest{}
	mi := &file_notification_v1_notification_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListNotificationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListNotificationsRequest) ProtoMessage() {}

func (x *ListNotificationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_notification_v1_notification_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListNotificationsRequest.ProtoReflect.Descriptor instead.
func (*ListNotificationsRequest) Descriptor() ([]byte, []int) {
	return file_notification_v1_notification_proto_rawDescGZIP(), []int{4}
}

func (x *ListNotificationsRequest) GetUnreadOnly() bool {
	if x != nil {
		return x.UnreadOnly
	}
	return false
}

func (x *ListNotificationsRequest) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *ListNotificationsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListNotificationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Notifications []*Notification        `protobuf:"bytes,1,rep,name=notifications,proto3" json:"notifications,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListNotificationsResponse) Reset() {
	*x = ListNotificationsResponse{}
	mi := &file_notification_v1_notification_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListNotificationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListNotificationsResponse) ProtoMessage() {}

func (x *ListNotificationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_notification_v1_notification_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListNotificationsResponse.ProtoReflect.Descriptor instead.
func (*ListNotificationsResponse) Descriptor() ([]byte, []int) {
	return file_notification_v1_notification_proto_rawDescGZIP(), []int{5}
}

func (x *ListNotificationsResponse) GetNotifications() []*Notification {
	if x != nil {
		return x.Notifications
	}
	return nil
}

type GetNotificationCountsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetNotificationCountsRequest) Reset() {
	*x = GetNotificationCountsRequest{}
	mi := &file_notification_v1_notification_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetNotificationCountsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetNotificationCountsRequest) ProtoMessage() {}

func (x *GetNotificationCountsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_notification_v1_notification_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetNotificationCountsRequest.ProtoReflect.Descriptor instead.
func (*GetNotificationCountsRequest) Descriptor() ([]byte, []int) {
	return file_notification_v1_notification_proto_rawDescGZIP(), []int{6}
}

// Unread counts per recipient scope; total is always user + organization.
type GetNotificationCountsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Total         int64                  `protobuf:"varint,1,opt,name=total,proto3" json:"total,omitempty"`
	User          int64                  `protobuf:"varint,2,opt,name=user,proto3" json:"user,omitempty"`
	Organization  int64                  `protobuf:"varint,3,opt,name=organization,proto3" json:"organization,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetNotificationCountsResponse) Reset() {
	*x = GetNotificationCountsResponse{}
	mi := &file_notification_v1_notification_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetNotificationCountsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetNotificationCountsResponse) ProtoMessage() {}

func (x *GetNotificationCountsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_notification_v1_notification_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetNotificationCountsResponse.ProtoReflect.Descriptor instead.
func (*GetNotificationCountsResponse) Descriptor() ([]byte, []int) {
	return file_notification_v1_notification_proto_rawDescGZIP(), []int{7}
}

func (x *GetNotificationCountsResponse) GetTotal() int64 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *GetNotificationCountsResponse) GetUser() int64 {
	if x != nil {
		return x.User
	}
	return 0
}

func (x *GetNotificationCountsResponse) GetOrganization() int64 {
	if x != nil {
		return x.Organization
	}
	return 0
}

type MarkNotificationReadRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	NotificationId string                 `protobuf:"bytes,1,opt,name=notification_id,json=notificationId,proto3" json:"notification_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *MarkNotificationReadRequest) Reset() {
	*x = MarkNotificationReadRequest{}
	mi := &file_notification_v1_notification_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarkNotificationReadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkNotificationReadRequest) ProtoMessage() {}

func (x *MarkNotificationReadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_notification_v1_notification_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkNotificationReadRequest.ProtoReflect.Descriptor instead.
func (*MarkNotificationReadRequest) Descriptor() ([]byte, []int) {
	return file_notification_v1_notification_proto_rawDescGZIP(), []int{8}
}

func (x *MarkNotificationReadRequest) GetNotificationId() string {
	if x != nil {
		return x.NotificationId
	}
	return ""
}

type MarkNotificationReadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MarkNotificationReadResponse) Reset() {
	*x = MarkNotificationReadResponse{}
	mi := &file_notification_v1_notification_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarkNotificationReadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkNotificationReadResponse) ProtoMessage() {}

func (x *MarkNotificationReadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_notification_v1_notification_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkNotificationReadResponse.ProtoReflect.Descriptor instead.
func (*MarkNotificationReadResponse) Descriptor() ([]byte, []int) {
	return file_notification_v1_notification_proto_rawDescGZIP(), []int{9}
}

type MarkAllNotificationsReadRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MarkAllNotificationsReadRequest) Reset() {
	*x = MarkAllNotificationsReadRequest{}
	mi := &file_notification_v1_notification_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarkAllNotificationsReadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkAllNotificationsReadRequest) ProtoMessage() {}

func (x *MarkAllNotificationsReadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_notification_v1_notification_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkAllNotificationsReadRequest.ProtoReflect.Descriptor instead.
func (*MarkAllNotificationsReadRequest) Descriptor() ([]byte, []int) {
	return file_notification_v1_notification_proto_rawDescGZIP(), []int{10}
}

type MarkAllNotificationsReadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MarkedCount   int64                  `protobuf:"varint,1,opt,name=marked_count,json=markedCount,proto3" json:"marked_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MarkAllNotificationsReadResponse) Reset() {
	*x = MarkAllNotificationsReadResponse{}
	mi := &file_notification_v1_notification_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarkAllNotificationsReadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkAllNotificationsReadResponse) ProtoMessage() {}

func (x *MarkAllNotificationsReadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_notification_v1_notification_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkAllNotificationsReadResponse.ProtoReflect.Descriptor instead.
func (*MarkAllNotificationsReadResponse) Descriptor() ([]byte, []int) {
	return file_notification_v1_notification_proto_rawDescGZIP(), []int{11}
}

func (x *MarkAllNotificationsReadResponse) GetMarkedCount() int64 {
	if x != nil {
		return x.MarkedCount
	}
	return 0
}

type DeleteNotificationRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	NotificationId string                 `protobuf:"bytes,1,opt,name=notification_id,json=notificationId,proto3" json:"notification_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *DeleteNotificationRequest) Reset() {
	*x = DeleteNotificationRequest{}
	mi := &file_notification_v1_notification_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteNotificationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteNotificationRequest) ProtoMessage() {}

func (x *DeleteNotificationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_notification_v1_notification_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteNotificationRequest.ProtoReflect.Descriptor instead.
func (*DeleteNotificationRequest) Descriptor() ([]byte, []int) {
	return file_notification_v1_notification_proto_rawDescGZIP(), []int{12}
}

func (x *DeleteNotificationRequest) GetNotificationId() string {
	if x != nil {
		return x.NotificationId
	}
	return ""
}

type DeleteNotificationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteNotificationResponse) Reset() {
	*x = DeleteNotificationResponse{}
	mi := &file_notification_v1_notification_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteNotificationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteNotificationResponse) ProtoMessage() {}

func (x *DeleteNotificationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_notification_v1_notification_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteNotificationResponse.ProtoReflect.Descriptor instead.
func (*DeleteNotificationResponse) Descriptor() ([]byte, []int) {
	return file_notification_v1_notification_proto_rawDescGZIP(), []int{13}
}

type GetNotificationPreferencesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetNotificationPreferencesRequest) Reset() {
	*x = GetNotificationPreferencesRequest{}
	mi := &file_notification_v1_notification_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetNotificationPreferencesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetNotificationPreferencesRequest) ProtoMessage() {}

func (x *GetNotificationPreferencesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_notification_v1_notification_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetNotificationPreferencesRequest.ProtoReflect.Descriptor instead.
func (*GetNotificationPreferencesRequest) Descriptor() ([]byte, []int) {
	return file_notification_v1_notification_proto_rawDescGZIP(), []int{14}
}

type GetNotificationPreferencesResponse struct {
	state         protoimpl.MessageState   `protogen:"open.v1"`
	Preferences   *NotificationPreferences `protobuf:"bytes,1,opt,name=preferences,proto3" json:"preferences,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetNotificationPreferencesResponse) Reset() {
	*x = GetNotificationPreferencesResponse{}
	mi := &file_notification_v1_notification_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetNotificationPreferencesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetNotificationPreferencesResponse) ProtoMessage() {}

func (x *GetNotificationPreferencesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_notification_v1_notification_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetNotificationPreferencesResponse.ProtoReflect.Descriptor instead.
func (*GetNotificationPreferencesResponse) Descriptor() ([]byte, []int) {
	return file_notification_v1_notification_proto_rawDescGZIP(), []int{15}
}

func (x *GetNotificationPreferencesResponse) GetPreferences() *NotificationPreferences {
	if x != nil {
		return x.Preferences
	}
	return nil
}

type UpdateNotificationPreferencesRequest struct {
	state         protoimpl.MessageState   `protogen:"open.v1"`
	Preferences   *NotificationPreferences `protobuf:"bytes,1,opt,name=preferences,proto3" json:"preferences,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateNotificationPreferencesRequest) Reset() {
	*x = UpdateNotificationPreferencesRequest{}
	mi := &file_notification_v1_notification_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateNotificationPreferencesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateNotificationPreferencesRequest) ProtoMessage() {}

func (x *UpdateNotificationPreferencesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_notification_v1_notification_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateNotificationPreferencesRequest.ProtoReflect.Descriptor instead.
func (*UpdateNotificationPreferencesRequest) Descriptor() ([]byte, []int) {
	return file_notification_v1_notification_proto_rawDescGZIP(), []int{16}
}

func (x *UpdateNotificationPreferencesRequest) GetPreferences() *NotificationPreferences {
	if x != nil {
		return x.Preferences
	}
	return nil
}

type UpdateNotificationPreferencesResponse struct {
	state         protoimpl.MessageState   `protogen:"open.v1"`
	Preferences   *NotificationPreferences `protobuf:"bytes,1,opt,name=preferences,proto3" json:"preferences,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateNotificationPreferencesResponse) Reset() {
	*x = UpdateNotificationPreferencesResponse{}
	mi := &file_notification_v1_notification_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateNotificationPreferencesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateNotificationPreferencesResponse) ProtoMessage() {}

func (x *UpdateNotificationPreferencesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_notification_v1_notification_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateNotificationPreferencesResponse.ProtoReflect.Descriptor instead.
func (*UpdateNotificationPreferencesResponse) Descriptor() ([]byte, []int) {
	return file_notification_v1_notification_proto_rawDescGZIP(), []int{17}
}

func (x *UpdateNotificationPreferencesResponse) GetPreferences() *NotificationPreferences {
	if x != nil {
		return x.Preferences
	}
	return nil
}

var File_notification_v1_notification_proto protoreflect.FileDescriptor

const file_notification_v1_notification_proto_rawDesc = "" +
	"\n" +
	"\"notification/v1/notification.proto\x12\x19teamspace.notification.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\xc1\x04\n" +
	"\fNotification\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04type\x18\x02 \x01(\tR\x04type\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12\x18\n" +
	"\amessage\x18\x04 \x01(\tR\amessage\x12\x1a\n" +
	"\bpriority\x18\x05 \x01(\tR\bpriority\x12\x14\n" +
	"\x05scope\x18\x06 \x01(\tR\x05scope\x12\"\n" +
	"\rowner_user_id\x18\a \x01(\tR\vownerUserId\x12\x15\n" +
	"\x06org_id\x18\b \x01(\tR\x05orgId\x12*\n" +
	"\x11related_entity_id\x18\t \x01(\tR\x0frelatedEntityId\x12.\n" +
	"\x13related_entity_type\x18\n" +
	" \x01(\tR\x11relatedEntityType\x12\x12\n" +
	"\x04data\x18\v \x01(\fR\x04data\x12\x1d\n" +
	"\n" +
	"action_url\x18\f \x01(\tR\tactionUrl\x12\x17\n" +
	"\ais_read\x18\r \x01(\bR\x06isRead\x123\n" +
	"\aread_at\x18\x0e \x01(\v2\x1a.google.protobuf.TimestampR\x06readAt\x12\x1d\n" +
	"\n" +
	"created_by\x18\x0f \x01(\tR\tcreatedBy\x129\n" +
	"\n" +
	"created_at\x18\x10 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"expires_at\x18\x11 \x01(\v2\x1a.google.protobuf.TimestampR\texpiresAt\"\xeb\x02\n" +
	"\x17NotificationPreferences\x12#\n" +
	"\remail_enabled\x18\x01 \x01(\bR\femailEnabled\x12!\n" +
	"\fpush_enabled\x18\x02 \x01(\bR\vpushEnabled\x12+\n" +
	"\x11org_announcements\x18\x03 \x01(\bR\x10orgAnnouncements\x12,\n" +
	"\x12due_date_reminders\x18\x04 \x01(\bR\x10dueDateReminders\x12)\n" +
	"\x10digest_frequency\x18\x05 \x01(\tR\x0fdigestFrequency\x12.\n" +
	"\x13quiet_hours_enabled\x18\x06 \x01(\bR\x11quietHoursEnabled\x12*\n" +
	"\x11quiet_hours_start\x18\a \x01(\tR\x0fquietHoursStart\x12&\n" +
	"\x0fquiet_hours_end\x18\b \x01(\tR\rquietHoursEnd\"\x81\x03\n" +
	"\x19CreateNotificationRequest\x12\x12\n" +
	"\x04type\x18\x01 \x01(\tR\x04type\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x18\n" +
	"\amessage\x18\x03 \x01(\tR\amessage\x12\x1a\n" +
	"\bpriority\x18\x04 \x01(\tR\bpriority\x12\x14\n" +
	"\x05scope\x18\x05 \x01(\tR\x05scope\x12$\n" +
	"\x0etarget_user_id\x18\x06 \x01(\tR\ftargetUserId\x12*\n" +
	"\x11related_entity_id\x18\a \x01(\tR\x0frelatedEntityId\x12.\n" +
	"\x13related_entity_type\x18\b \x01(\tR\x11relatedEntityType\x12\x12\n" +
	"\x04data\x18\t \x01(\fR\x04data\x12\x1d\n" +
	"\n" +
	"action_url\x18\n" +
	" \x01(\tR\tactionUrl\x129\n" +
	"\n" +
	"expires_at\x18\v \x01(\v2\x1a.google.protobuf.TimestampR\texpiresAt\"i\n" +
	"\x1aCreateNotificationResponse\x12K\n" +
	"\fnotification\x18\x01 \x01(\v2'.teamspace.notification.v1.NotificationR\fnotification\"e\n" +
	"\x18ListNotificationsRequest\x12\x1f\n" +
	"\vunread_only\x18\x01 \x01(\bR\n" +
	"unreadOnly\x12\x12\n" +
	"\x04type\x18\x02 \x01(\tR\x04type\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x05R\x05limit\"j\n" +
	"\x19ListNotificationsResponse\x12M\n" +
	"\rnotifications\x18\x01 \x03(\v2'.teamspace.notification.v1.NotificationR\rnotifications\"\x1e\n" +
	"\x1cGetNotificationCountsRequest\"m\n" +
	"\x1dGetNotificationCountsResponse\x12\x14\n" +
	"\x05total\x18\x01 \x01(\x03R\x05total\x12\x12\n" +
	"\x04user\x18\x02 \x01(\x03R\x04user\x12\"\n" +
	"\forganization\x18\x03 \x01(\x03R\forganization\"F\n" +
	"\x1bMarkNotificationReadRequest\x12'\n" +
	"\x0fnotification_id\x18\x01 \x01(\tR\x0enotificationId\"\x1e\n" +
	"\x1cMarkNotificationReadResponse\"!\n" +
	"\x1fMarkAllNotificationsReadRequest\"E\n" +
	" MarkAllNotificationsReadResponse\x12!\n" +
	"\fmarked_count\x18\x01 \x01(\x03R\vmarkedCount\"D\n" +
	"\x19DeleteNotificationRequest\x12'\n" +
	"\x0fnotification_id\x18\x01 \x01(\tR\x0enotificationId\"\x1c\n" +
	"\x1aDeleteNotificationResponse\"#\n" +
	"!GetNotificationPreferencesRequest\"z\n" +
	"\"GetNotificationPreferencesResponse\x12T\n" +
	"\vpreferences\x18\x01 \x01(\v22.teamspace.notification.v1.NotificationPreferencesR\vpreferences\"|\n" +
	"$UpdateNotificationPreferencesRequest\x12T\n" +
	"\vpreferences\x18\x01 \x01(\v22.teamspace.notification.v1.NotificationPreferencesR\vpreferences\"}\n" +
	"%UpdateNotificationPreferencesResponse\x12T\n" +
	"\vpreferences\x18\x01 \x01(\v22.teamspace.notification.v1.NotificationPreferencesR\vpreferences2\x8b\t\n" +
	"\x13NotificationService\x12\x81\x01\n" +
	"\x12CreateNotification\x124.teamspace.notification.v1.CreateNotificationRequest\x1a5.teamspace.notification.v1.CreateNotificationResponse\x12~\n" +
	"\x11ListNotifications\x123.teamspace.notification.v1.ListNotificationsRequest\x1a4.teamspace.notification.v1.ListNotificationsResponse\x12\x8a\x01\n" +
	"\x15GetNotificationCounts\x127.teamspace.notification.v1.GetNotificationCountsRequest\x1a8.teamspace.notification.v1.GetNotificationCountsResponse\x12\x87\x01\n" +
	"\x14MarkNotificationRead\x126.teamspace.notification.v1.MarkNotificationReadRequest\x1a7.teamspace.notification.v1.MarkNotificationReadResponse\x12\x93\x01\n" +
	"\x18MarkAllNotificationsRead\x12:.teamspace.notification.v1.MarkAllNotificationsReadRequest\x1a;.teamspace.notification.v1.MarkAllNotificationsReadResponse\x12\x81\x01\n" +
	"\x12DeleteNotification\x124.teamspace.notification.v1.DeleteNotificationRequest\x1a5.teamspace.notification.v1.DeleteNotificationResponse\x12\x99\x01\n" +
	"\x1aGetNotificationPreferences\x12<.teamspace.notification.v1.GetNotificationPreferencesRequest\x1a=.teamspace.notification.v1.GetNotificationPreferencesResponse\x12\xa2\x01\n" +
	"\x1dUpdateNotificationPreferences\x12?.teamspace.notification.v1.UpdateNotificationPreferencesRequest\x1a@.teamspace.notification.v1.UpdateNotificationPreferencesResponseB@Z>teamspace/backend/api/generated/notification/v1;notificationv1b\x06proto3"

var (
	file_notification_v1_notification_proto_rawDescOnce sync.Once
	file_notification_v1_notification_proto_rawDescData []byte
)

func file_notification_v1_notification_proto_rawDescGZIP() []byte {
	file_notification_v1_notification_proto_rawDescOnce.Do(func() {
		file_notification_v1_notification_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_notification_v1_notification_proto_rawDesc), len(file_notification_v1_notification_proto_rawDesc)))
	})
	return file_notification_v1_notification_proto_rawDescData
}

var file_notification_v1_notification_proto_msgTypes = make([]protoimpl.MessageInfo, 18)
var file_notification_v1_notification_proto_goTypes = []any{
	(*Notification)(nil),                          // 0: teamspace.notification.v1.Notification
	(*NotificationPreferences)(nil),               // 1: teamspace.notification.v1.NotificationPreferences
	(*CreateNotificationRequest)(nil),             // 2: teamspace.notification.v1.CreateNotificationRequest
	(*CreateNotificationResponse)(nil),            // 3: teamspace.notification.v1.CreateNotificationResponse
	(*ListNotificationsRequest)(nil),              // 4: teamspace.notification.v1.ListNotificationsRequest
	(*ListNotificationsResponse)(nil),             // 5: teamspace.notification.v1.ListNotificationsResponse
	(*GetNotificationCountsRequest)(nil),          // 6: teamspace.notification.v1.GetNotificationCountsRequest
	(*GetNotificationCountsResponse)(nil),         // 7: teamspace.notification.v1.GetNotificationCountsResponse
	(*MarkNotificationReadRequest)(nil),           // 8: teamspace.notification.v1.MarkNotificationReadRequest
	(*MarkNotificationReadResponse)(nil),          // 9: teamspace.notification.v1.MarkNotificationReadResponse
	(*MarkAllNotificationsReadRequest)(nil),       // 10: teamspace.notification.v1.MarkAllNotificationsReadRequest
	(*MarkAllNotificationsReadResponse)(nil),      // 11: teamspace.notification.v1.MarkAllNotificationsReadResponse
	(*DeleteNotificationRequest)(nil),             // 12: teamspace.notification.v1.DeleteNotificationRequest
	(*DeleteNotificationResponse)(nil),            // 13: teamspace.notification.v1.DeleteNotificationResponse
	(*GetNotificationPreferencesRequest)(nil),     // 14: teamspace.notification.v1.GetNotificationPreferencesRequest
	(*GetNotificationPreferencesResponse)(nil),    // 15: teamspace.notification.v1.GetNotificationPreferencesResponse
	(*UpdateNotificationPreferencesRequest)(nil),  // 16: teamspace.notification.v1.UpdateNotificationPreferencesRequest
	(*UpdateNotificationPreferencesResponse)(nil), // 17: teamspace.notification.v1.UpdateNotificationPreferencesResponse
	(*timestamppb.Timestamp)(nil),                 // 18: google.protobuf.Timestamp
}
var file_notification_v1_notification_proto_depIdxs = []int32{
	18, // 0: teamspace.notification.v1.Notification.read_at:type_name -> google.protobuf.Timestamp
	18, // 1: teamspace.notification.v1.Notification.created_at:type_name -> google.protobuf.Timestamp
	18, // 2: teamspace.notification.v1.Notification.expires_at:type_name -> google.protobuf.Timestamp
	18, // 3: teamspace.notification.v1.CreateNotificationRequest.expires_at:type_name -> google.protobuf.Timestamp
	0,  // 4: teamspace.notification.v1.CreateNotificationResponse.notification:type_name -> teamspace.notification.v1.Notification
	0,  // 5: teamspace.notification.v1.ListNotificationsResponse.notifications:type_name -> teamspace.notification.v1.Notification
	1,  // 6: teamspace.notification.v1.GetNotificationPreferencesResponse.preferences:type_name -> teamspace.notification.v1.NotificationPreferences
	1,  // 7: teamspace.notification.v1.UpdateNotificationPreferencesRequest.preferences:type_name -> teamspace.notification.v1.NotificationPreferences
	1,  // 8: teamspace.notification.v1.UpdateNotificationPreferencesResponse.preferences:type_name -> teamspace.notification.v1.NotificationPreferences
	2,  // 9: teamspace.notification.v1.NotificationService.CreateNotification:input_type -> teamspace.notification.v1.CreateNotificationRequest
	4,  // 10: teamspace.notification.v1.NotificationService.ListNotifications:input_type -> teamspace.notification.v1.ListNotificationsRequest
	6,  // 11: teamspace.notification.v1.NotificationService.GetNotificationCounts:input_type -> teamspace.notification.v1.GetNotificationCountsRequest
	8,  // 12: teamspace.notification.v1.NotificationService.MarkNotificationRead:input_type -> teamspace.notification.v1.MarkNotificationReadRequest
	10, // 13: teamspace.notification.v1.NotificationService.MarkAllNotificationsRead:input_type -> teamspace.notification.v1.MarkAllNotificationsReadRequest
	12, // 14: teamspace.notification.v1.NotificationService.DeleteNotification:input_type -> teamspace.notification.v1.DeleteNotificationRequest
	14, // 15: teamspace.notification.v1.NotificationService.GetNotificationPreferences:input_type -> teamspace.notification.v1.GetNotificationPreferencesRequest
	16, // 16: teamspace.notification.v1.NotificationService.UpdateNotificationPreferences:input_type -> teamspace.notification.v1.UpdateNotificationPreferencesRequest
	3,  // 17: teamspace.notification.v1.NotificationService.CreateNotification:output_type -> teamspace.notification.v1.CreateNotificationResponse
	5,  // 18: teamspace.notification.v1.NotificationService.ListNotifications:output_type -> teamspace.notification.v1.ListNotificationsResponse
	7,  // 19: teamspace.notification.v1.NotificationService.GetNotificationCounts:output_type -> teamspace.notification.v1.GetNotificationCountsResponse
	9,  // 20: teamspace.notification.v1.NotificationService.MarkNotificationRead:output_type -> teamspace.notification.v1.MarkNotificationReadResponse
	11, // 21: teamspace.notification.v1.NotificationService.MarkAllNotificationsRead:output_type -> teamspace.notification.v1.MarkAllNotificationsReadResponse
	13, // 22: teamspace.notification.v1.NotificationService.DeleteNotification:output_type -> teamspace.notification.v1.DeleteNotificationResponse
	15, // 23: teamspace.notification.v1.NotificationService.GetNotificationPreferences:output_type -> teamspace.notification.v1.GetNotificationPreferencesResponse
	17, // 24: teamspace.notification.v1.NotificationService.UpdateNotificationPreferences:output_type -> teamspace.notification.v1.UpdateNotificationPreferencesResponse
	17, // [17:25] is the sub-list for method output_type
	9,  // [9:17] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_notification_v1_notification_proto_init() }
func file_notification_v1_notification_proto_init() {
	if File_notification_v1_notification_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_notification_v1_notification_proto_rawDesc), len(file_notification_v1_notification_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   18,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_notification_v1_notification_proto_goTypes,
		DependencyIndexes: file_notification_v1_notification_proto_depIdxs,
		MessageInfos:      file_notification_v1_notification_proto_msgTypes,
	}.Build()
	File_notification_v1_notification_proto = out.File
	file_notification_v1_notification_proto_goTypes = nil
	file_notification_v1_notification_proto_depIdxs = nil
}
