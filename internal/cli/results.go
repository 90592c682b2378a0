package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aidanlsb/fsq/internal/fileinfo"
	"github.com/aidanlsb/fsq/internal/query"
	"github.com/aidanlsb/fsq/internal/ui"
)

// defaultColumns is the projection used for SELECT *.
var defaultColumns = []query.Attribute{
	query.AttrName,
	query.AttrSize,
	query.AttrModified,
	query.AttrPath,
}

// renderResults renders query results as a text table. The projection
// narrows the displayed columns; JSON output always carries the full
// snapshots.
func renderResults(results []*fileinfo.FileInfo, attrs []query.Attribute) string {
	columns := projectionColumns(attrs)

	table := ui.NewTable(len(columns))
	header := make([]string, len(columns))
	for i, attr := range columns {
		header[i] = strings.ToUpper(attr.String())
	}
	table.SetHeader(header...)

	for _, fi := range results {
		row := make([]string, len(columns))
		for i, attr := range columns {
			row[i] = attributeColumn(fi, attr)
		}
		table.AddRow(row...)
	}

	var sb strings.Builder
	sb.WriteString(table.String())
	sb.WriteString(ui.Hint(fmt.Sprintf("%d %s", len(results), pluralize("result", len(results)))))
	sb.WriteString("\n")
	return sb.String()
}

func projectionColumns(attrs []query.Attribute) []query.Attribute {
	if len(attrs) == 0 {
		return defaultColumns
	}
	for _, attr := range attrs {
		if attr == query.AttrAll {
			return defaultColumns
		}
	}
	return attrs
}

func attributeColumn(fi *fileinfo.FileInfo, attr query.Attribute) string {
	switch attr {
	case query.AttrName:
		return fi.Name
	case query.AttrPath:
		return fi.Path
	case query.AttrSize:
		if fi.IsDir {
			return "-"
		}
		return ui.FormatSize(fi.Size)
	case query.AttrExtension:
		return fi.Extension
	case query.AttrModified:
		return ui.FormatTime(fi.Modified)
	case query.AttrCreated:
		if fi.Created == nil {
			return "-"
		}
		return ui.FormatTime(*fi.Created)
	case query.AttrAccessed:
		if fi.Accessed == nil {
			return "-"
		}
		return ui.FormatTime(*fi.Accessed)
	case query.AttrPermissions:
		return ui.FormatMode(fi.Mode(), fi.IsDir)
	case query.AttrOwner:
		if fi.Owner == "" {
			return "-"
		}
		return fi.Owner
	case query.AttrIsDirectory:
		return strconv.FormatBool(fi.IsDir)
	case query.AttrIsSymlink:
		return strconv.FormatBool(fi.IsSymlink)
	case query.AttrIsExecutable:
		return strconv.FormatBool(fi.IsExecutable())
	default:
		return ""
	}
}

func pluralize(singular string, count int) string {
	if count == 1 {
		return singular
	}
	return singular + "s"
}
