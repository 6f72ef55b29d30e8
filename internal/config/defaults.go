package config

var defaults = map[string]any{
	"secret":    "",
	"log_level": "info",

	"base_url": "/",

	"methods_file": "",

	"report.near_due_days": 10,
	"report.overdue_days":  15,

	"auth.admin_user":          "admin",
	"auth.admin_password_hash": "",
	"auth.session_ttl":         8, // 8 hours

	"storage.type":       "sqlite",
	"storage.local.path": "./data/sanitation.db",
}

func Defaults() map[string]any {
	values := make(map[string]any)
	for k, v := range defaults {
		values[k] = v
	}
	return values
}
