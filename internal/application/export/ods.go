package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
)

const odsMimeType = "application/vnd.oasis.opendocument.spreadsheet"

const odsManifest = `<?xml version="1.0" encoding="UTF-8"?>
<manifest:manifest xmlns:manifest="urn:oasis:names:tc:opendocument:xmlns:manifest:1.0" manifest:version="1.2">
 <manifest:file-entry manifest:full-path="/" manifest:version="1.2" manifest:media-type="application/vnd.oasis.opendocument.spreadsheet"/>
 <manifest:file-entry manifest:full-path="content.xml" manifest:media-type="text/xml"/>
</manifest:manifest>
`

// ToODS writes rows as a single table OpenDocument spreadsheet. The
// mimetype entry is stored first and uncompressed.
func ToODS(rows []Row, sheetName string) ([]byte, error) {
	if sheetName == "" {
		sheetName = "Sheet1"
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	mt, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return nil, fmt.Errorf("ods: mimetype: %w", err)
	}
	if _, err := io.WriteString(mt, odsMimeType); err != nil {
		return nil, fmt.Errorf("ods: mimetype: %w", err)
	}

	content, err := zw.Create("content.xml")
	if err != nil {
		return nil, fmt.Errorf("ods: content: %w", err)
	}
	if err := writeODSContent(content, rows, sheetName); err != nil {
		return nil, fmt.Errorf("ods: content: %w", err)
	}

	manifest, err := zw.Create("META-INF/manifest.xml")
	if err != nil {
		return nil, fmt.Errorf("ods: manifest: %w", err)
	}
	if _, err := io.WriteString(manifest, odsManifest); err != nil {
		return nil, fmt.Errorf("ods: manifest: %w", err)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("ods: close: %w", err)
	}
	return buf.Bytes(), nil
}

func writeODSContent(w io.Writer, rows []Row, sheetName string) error {
	var b bytes.Buffer
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString(`<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"`)
	b.WriteString(` xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0"`)
	b.WriteString(` xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0" office:version="1.2">`)
	b.WriteString(`<office:body><office:spreadsheet><table:table table:name="`)
	if err := xml.EscapeText(&b, []byte(sheetName)); err != nil {
		return err
	}
	b.WriteString(`">`)

	headers := Headers(rows)
	if len(headers) > 0 {
		b.WriteString("<table:table-row>")
		for _, h := range headers {
			if err := writeODSCell(&b, h); err != nil {
				return err
			}
		}
		b.WriteString("</table:table-row>")
	}
	for _, row := range rows {
		b.WriteString("<table:table-row>")
		for _, h := range headers {
			v, _ := row.Get(h)
			if err := writeODSCell(&b, v); err != nil {
				return err
			}
		}
		b.WriteString("</table:table-row>")
	}

	b.WriteString("</table:table></office:spreadsheet></office:body></office:document-content>")
	_, err := w.Write(b.Bytes())
	return err
}

func writeODSCell(b *bytes.Buffer, v any) error {
	var num string
	switch val := v.(type) {
	case nil:
		b.WriteString("<table:table-cell/>")
		return nil
	case int:
		num = strconv.Itoa(val)
	case int64:
		num = strconv.FormatInt(val, 10)
	case float64:
		num = strconv.FormatFloat(val, 'f', -1, 64)
	}

	if num != "" {
		fmt.Fprintf(b, `<table:table-cell office:value-type="float" office:value="%s">`, num)
	} else {
		b.WriteString(`<table:table-cell office:value-type="string">`)
	}
	b.WriteString("<text:p>")
	text := num
	if text == "" {
		text = CellText(v)
	}
	if err := xml.EscapeText(b, []byte(text)); err != nil {
		return err
	}
	b.WriteString("</text:p></table:table-cell>")
	return nil
}
