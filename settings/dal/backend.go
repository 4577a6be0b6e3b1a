package dal

import (
	"github.com/doitintl/hello/nova-checkout/common"
	"github.com/doitintl/hello/nova-checkout/framework/connection"
)

const settingsFileEnv = "SETTINGS_FILE"

// SettingsFilePath returns the local settings file, if one is configured.
func SettingsFilePath() string {
	return common.GetEnv(settingsFileEnv, "")
}

// NewSettingsDAL returns the file backend when SETTINGS_FILE is set and the
// Firestore backend otherwise.
func NewSettingsDAL(conn *connection.Connection) ISettings {
	if path := SettingsFilePath(); path != "" {
		return NewSettingsFile(path)
	}

	return NewSettingsFirestoreWithClient(conn.Firestore)
}
