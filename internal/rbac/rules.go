package rbac

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	"student": {
		"assessment:submit",
		"profile:view-own",
		"guides:view",
		"user:change_password",
	},
	"guardian": {
		"assessment:submit",
		"profile:view-own",
		"guides:view",
		"user:change_password",
	},
	"teacher": {
		"assessment:submit",
		"profile:view-own",
		"profile:view-all",
		"bucket:view",
		"guides:view",
		"guides:manage",
		"analytics:view",
		"users:bulk_upsert",
		"users:list",
		"user:change_password",
	},
	"admin": {
		"*", // everything
	},
}
