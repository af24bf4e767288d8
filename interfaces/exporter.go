package interfaces

// Exporter writes one worksheet: a header row followed by data rows.
// Returns the path of the file written.
type Exporter interface {
	Write(dir, filename string, header []string, rows [][]string) (string, error)
}
