package dynamodb

// Key prefixes for the single-table composite key scheme. Every key string in
// the package is built here so the prefix convention is defined once.
const (
	prefixProject      = "PROJECT#"
	prefixTask         = "TASK#"
	prefixUser         = "USER#"
	prefixMetadata     = "METADATA#"
	prefixNotification = "NOTIFICATION#"
	prefixStatus       = "STATUS#"
	prefixPriority     = "PRIORITY#"
)

// Partition keys
func projectPK(projectID string) string { return prefixProject + projectID }
func userPK(username string) string     { return prefixUser + username }

// Sort keys
func projectMetadataSK(projectID string) string { return prefixMetadata + projectID }
func userMetadataSK(username string) string     { return prefixMetadata + username }
func taskSK(taskID string) string               { return prefixTask + taskID }
func projectRelationSK(projectID string) string { return prefixProject + projectID }

// GSI2 keys for the status/priority task index
func statusGSI2PK(status string) string     { return prefixStatus + status }
func priorityGSI2SK(priority string) string { return prefixPriority + priority }
