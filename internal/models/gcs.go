package models

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/erpcore/go-fin-ledger/internal/common"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type CloudStoragePayload struct {
	Filename string
	Path     string
}

func (c CloudStoragePayload) GetFilePath() string {
	if c.Path == "" {
		return c.Filename
	}
	return fmt.Sprintf("%s/%s", c.Path, c.Filename)
}

func NewCloudStoragePayload(input string) CloudStoragePayload {
	input = path.Clean(input)

	dir := path.Dir(input)
	filename := path.Base(input)

	// a bare file name has no directory
	if strings.TrimSpace(dir) == "." {
		dir = ""
	}

	return CloudStoragePayload{Filename: filename, Path: dir}
}

// StatementFile is a rendered statement ready to be downloaded or archived.
type StatementFile struct {
	FileName    string
	ContentType string
	Data        []byte
}

func StatementFileName(accountID int64, from, to time.Time) string {
	return fmt.Sprintf("statement_%d_%s_%s.xlsx",
		accountID,
		from.Format(common.DateFormatYYYYMMDDWithoutDash),
		to.Format(common.DateFormatYYYYMMDDWithoutDash),
	)
}

// NewStatementArchivePayload places archived statements under folder/YYYY-MM.
func NewStatementArchivePayload(folder string, accountID int64, period Period) CloudStoragePayload {
	return CloudStoragePayload{
		Path:     path.Join(folder, period.String()),
		Filename: StatementFileName(accountID, period.FirstDay(), period.LastDay()),
	}
}

// ArchiveResult summarises one export-statements run.
type ArchiveResult struct {
	Period   Period
	Archived []string
	Failed   int
}
