package constants

// JobStatus is the canonical status for rows in scan_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued   JobStatus = "QUEUED"    // queued for processing
	JobStatusRunning  JobStatus = "RUNNING"   // in progress
	JobStatusOCROK    JobStatus = "OCR_OK"    // stage 1 completed (text recognized)
	JobStatusFieldsOK JobStatus = "FIELDS_OK" // stage 2 completed (fields parsed)
	JobStatusFailed   JobStatus = "FAILED"    // terminal failure
)

// MatchMethod records how a visitor was identified when a visit is registered.
type MatchMethod string

const (
	MatchByFace     MatchMethod = "FACE"     // automatic face match above threshold
	MatchByManual   MatchMethod = "MANUAL"   // operator picked from the gallery
	MatchByDocument MatchMethod = "DOCUMENT" // identified via scanned document
)

// MatchMethods holds the allowed values for the matched_by field in Visit.
var MatchMethods = []string{string(MatchByFace), string(MatchByManual), string(MatchByDocument)}
