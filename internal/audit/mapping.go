package audit

import "strings"

// ActionResource holds action and resource derived from a gRPC full method name.
type ActionResource struct {
	Action   string
	Resource string
}

// Method overrides that do not follow the verb-prefix convention.
const (
	todoToggle           = "/teamspace.todo.v1.TodoService/ToggleTodo"
	notificationMarkOne  = "/teamspace.notification.v1.NotificationService/MarkNotificationRead"
	notificationMarkAll  = "/teamspace.notification.v1.NotificationService/MarkAllNotificationsRead"
	authSwitchOrg        = "/teamspace.auth.v1.AuthService/SwitchOrganization"
	membershipAddMember  = "/teamspace.membership.v1.MembershipService/AddMember"
	membershipRemove     = "/teamspace.membership.v1.MembershipService/RemoveMember"
	membershipUpdateRole = "/teamspace.membership.v1.MembershipService/UpdateRole"
)

// ParseFullMethod returns action and resource for a gRPC full method (e.g.
// /teamspace.todo.v1.TodoService/CreateTodo). Action is a verb: get, list,
// create, update, delete, or a lowercase method name for others. Resource is
// derived from the service name (e.g. TodoService -> todo).
func ParseFullMethod(fullMethod string) ActionResource {
	switch fullMethod {
	case todoToggle:
		return ActionResource{Action: "toggle", Resource: "todo"}
	case notificationMarkOne:
		return ActionResource{Action: "mark_read", Resource: "notification"}
	case notificationMarkAll:
		return ActionResource{Action: "mark_all_read", Resource: "notification"}
	case authSwitchOrg:
		return ActionResource{Action: "switch_org", Resource: "session"}
	case membershipAddMember:
		return ActionResource{Action: "user_added", Resource: "user"}
	case membershipRemove:
		return ActionResource{Action: "user_removed", Resource: "user"}
	case membershipUpdateRole:
		return ActionResource{Action: "role_changed", Resource: "user"}
	}
	// fullMethod format: /teamspace.package.v1.ServiceName/MethodName
	slash := strings.LastIndex(fullMethod, "/")
	if slash < 0 {
		return ActionResource{Action: "unknown", Resource: "unknown"}
	}
	method := fullMethod[slash+1:]
	beforeSlash := fullMethod[:slash]
	dot := strings.LastIndex(beforeSlash, ".")
	if dot < 0 {
		return ActionResource{Action: strings.ToLower(method), Resource: "unknown"}
	}
	serviceName := beforeSlash[dot+1:]
	return ActionResource{Action: methodToAction(method), Resource: serviceToResource(serviceName)}
}

func serviceToResource(serviceName string) string {
	// TodoService -> todo, OrganizationService -> organization
	s := strings.TrimSuffix(serviceName, "Service")
	if s == "" {
		return "unknown"
	}
	return strings.ToLower(s[0:1]) + s[1:]
}

func methodToAction(method string) string {
	switch {
	case strings.HasPrefix(method, "Get") && method != "Get":
		return "get"
	case strings.HasPrefix(method, "List"):
		return "list"
	case strings.HasPrefix(method, "Create"):
		return "create"
	case strings.HasPrefix(method, "Update"):
		return "update"
	case strings.HasPrefix(method, "Delete"):
		return "delete"
	case strings.HasPrefix(method, "Add"):
		return "add"
	case strings.HasPrefix(method, "Remove"):
		return "remove"
	case strings.HasPrefix(method, "Register"):
		return "register"
	case strings.HasPrefix(method, "Login"):
		return "login"
	case strings.HasPrefix(method, "Logout"):
		return "logout"
	case strings.HasPrefix(method, "Refresh"):
		return "refresh"
	case strings.HasPrefix(method, "Revoke"):
		return "revoke"
	case strings.HasPrefix(method, "Emit"), strings.HasPrefix(method, "Batch"):
		return "emit"
	default:
		return strings.ToLower(method)
	}
}
