package audit

import "testing"

func TestParseFullMethod(t *testing.T) {
	cases := []struct {
		fullMethod   string
		wantAction   string
		wantResource string
	}{
		{"/teamspace.todo.v1.TodoService/CreateTodo", "create", "todo"},
		{"/teamspace.todo.v1.TodoService/ListTodos", "list", "todo"},
		{"/teamspace.todo.v1.TodoService/DeleteTodo", "delete", "todo"},
		{"/teamspace.todo.v1.TodoService/ToggleTodo", "toggle", "todo"},
		{"/teamspace.notification.v1.NotificationService/MarkNotificationRead", "mark_read", "notification"},
		{"/teamspace.notification.v1.NotificationService/MarkAllNotificationsRead", "mark_all_read", "notification"},
		{"/teamspace.notification.v1.NotificationService/CreateNotification", "create", "notification"},
		{"/teamspace.auth.v1.AuthService/SwitchOrganization", "switch_org", "session"},
		{"/teamspace.session.v1.SessionService/ListMySessions", "list", "session"},
		{"/teamspace.session.v1.SessionService/RevokeSession", "revoke", "session"},
		{"/teamspace.auth.v1.AuthService/Login", "login", "auth"},
		{"/teamspace.auth.v1.AuthService/Logout", "logout", "auth"},
		{"/teamspace.auth.v1.AuthService/Register", "register", "auth"},
		{"/teamspace.auth.v1.AuthService/Refresh", "refresh", "auth"},
		{"/teamspace.membership.v1.MembershipService/AddMember", "user_added", "user"},
		{"/teamspace.membership.v1.MembershipService/RemoveMember", "user_removed", "user"},
		{"/teamspace.membership.v1.MembershipService/UpdateRole", "role_changed", "user"},
		{"/teamspace.organization.v1.OrganizationService/CreateOrganization", "create", "organization"},
		{"/teamspace.organization.v1.OrganizationService/GetOrganization", "get", "organization"},
		{"/teamspace.user.v1.UserService/UpdateMe", "update", "user"},
		{"/teamspace.subscription.v1.SubscriptionService/CheckEntitlement", "checkentitlement", "subscription"},
		{"/teamspace.telemetry.v1.TelemetryService/EmitTelemetryEvent", "emit", "telemetry"},
		{"no-slash", "unknown", "unknown"},
	}
	for _, c := range cases {
		got := ParseFullMethod(c.fullMethod)
		if got.Action != c.wantAction || got.Resource != c.wantResource {
			t.Errorf("ParseFullMethod(%q) = (%s, %s), want (%s, %s)",
				c.fullMethod, got.Action, got.Resource, c.wantAction, c.wantResource)
		}
	}
}
