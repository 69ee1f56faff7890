package report

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

// ExportFile is a rendered report ready to be streamed as an attachment.
type ExportFile struct {
	Name        string
	ContentType string
	Body        []byte
}
