package models

// Backup is a full data snapshot: everything the gateway owns, plus a
// generation timestamp. BackupDate doubles as the validity marker when a
// file is read back; restore rejects files without it.
type Backup struct {
	BackupID   string     `json:"backupId"`
	BackupDate string     `json:"backupDate"`
	Products   []*Product `json:"products"`
	Sales      []*Sale    `json:"sales"`
	Settings   *Settings  `json:"settings"`
}
