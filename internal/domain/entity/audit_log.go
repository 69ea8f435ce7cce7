package entity

import "time"

// AuditLog entrada de la bitácora (más reciente primero).
type AuditLog struct {
	Meta
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

// Acciones de auditoría que no siguen el patrón CREATE_X / UPDATE_X / DELETE_X.
const (
	ActionLogin                = "LOGIN"
	ActionInventoryTransaction = "INVENTORY_TRANSACTION"
	ActionExportReport         = "EXPORT_REPORT"
)

// Verbos de auditoría para registros.
const (
	VerbCreate = "CREATE"
	VerbUpdate = "UPDATE"
	VerbDelete = "DELETE"
)

// AuditAction compone el nombre de acción, p. ej. ("CREATE", "BATCH") → "CREATE_BATCH".
func AuditAction(verb, subject string) string {
	return verb + "_" + subject
}
