package domain

// FileType represents the accepted upload types. Content is always read as
// text regardless of type.
type FileType string

const (
	FileTypeTXT  FileType = "txt"
	FileTypePDF  FileType = "pdf"
	FileTypeDOC  FileType = "doc"
	FileTypeDOCX FileType = "docx"
)

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"txt":  FileTypeTXT,
	"pdf":  FileTypePDF,
	"doc":  FileTypeDOC,
	"docx": FileTypeDOCX,
}

// WorkspaceStatus is the derived lifecycle state of a workspace.
type WorkspaceStatus string

const (
	WorkspaceStatusIdle         WorkspaceStatus = "idle"
	WorkspaceStatusFileSelected WorkspaceStatus = "file_selected"
	WorkspaceStatusAnalyzing    WorkspaceStatus = "analyzing"
	WorkspaceStatusAnalyzed     WorkspaceStatus = "analyzed"
)

const (
	// ExportSuffix is appended to the original filename for text exports.
	ExportSuffix = "_analysis.txt"

	// TimestampLayout formats AnalysisRecord.Timestamp.
	TimestampLayout = "2006-01-02 15:04:05"
)
