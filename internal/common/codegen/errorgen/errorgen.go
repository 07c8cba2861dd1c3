package errorgen

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/iancoleman/strcase"
)

//go:embed error_map.tmpl
var errorMapTemplate string

type (
	ErrorGen struct {
		ErrorMaps     []ErrorMap
		ErrorKeys     []ErrorKey
		ErrorMessages []ErrorMessage
		ErrorCodes    []ErrorCode
	}

	ErrorMap struct {
		Key     string
		Code    string
		Message string
	}

	ErrorKey struct {
		Key         string
		Description string
	}

	ErrorMessage struct {
		Key         string
		Description string
	}

	ErrorCode struct {
		Key         string
		Description string
	}
)

// Parse reads "key,code,message" rows, the first row is a header.
func Parse(r io.Reader) (ErrorGen, error) {
	var data ErrorGen

	lines, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return data, fmt.Errorf("read csv: %w", err)
	}

	var (
		seenKey     = make(map[string]bool)
		seenCode    = make(map[string]bool)
		seenMessage = make(map[string]bool)
	)
	for i := 1; i < len(lines); i++ {
		if len(lines[i]) < 3 {
			return data, fmt.Errorf("line %d: expected 3 columns, got %d", i+1, len(lines[i]))
		}
		key, code, message := lines[i][0], lines[i][1], lines[i][2]

		errKey := identifier("ErrKey", key)
		if seenKey[errKey] {
			return data, fmt.Errorf("line %d: duplicate key %q", i+1, key)
		}
		seenKey[errKey] = true
		data.ErrorKeys = append(data.ErrorKeys, ErrorKey{Key: errKey, Description: key})

		errCodeKey := identifier("errCode", code)
		if !seenCode[errCodeKey] {
			data.ErrorCodes = append(data.ErrorCodes, ErrorCode{Key: errCodeKey, Description: code})
		}
		seenCode[errCodeKey] = true

		errMessageKey := identifier("err", message)
		if !seenMessage[errMessageKey] {
			data.ErrorMessages = append(data.ErrorMessages, ErrorMessage{Key: errMessageKey, Description: message})
		}
		seenMessage[errMessageKey] = true

		data.ErrorMaps = append(data.ErrorMaps, ErrorMap{
			Key:     errKey,
			Code:    errCodeKey,
			Message: errMessageKey,
		})
	}

	return data, nil
}

// Render executes the template and gofmt's the result.
func Render(data ErrorGen) ([]byte, error) {
	tmpl, err := template.New("error_map").Funcs(sprig.TxtFuncMap()).Parse(errorMapTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	var processed bytes.Buffer
	if err := tmpl.Execute(&processed, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	formatted, err := format.Source(processed.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return formatted, nil
}

// GenerateErrorMapFromCSV renders csvPath into outputPath.
func GenerateErrorMapFromCSV(csvPath, outputPath string) error {
	f, err := os.Open(csvPath)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := Parse(f)
	if err != nil {
		return err
	}

	src, err := Render(data)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outputPath, src, 0o644)
}

func identifier(prefix, value string) string {
	return prefix + strings.Join(strings.Fields(strcase.ToCamel(value)), "")
}
