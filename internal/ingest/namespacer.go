package ingest

import (
	"github.com/elliotchance/orderedmap/v2"
)

const NamespaceSeparator = "|"

// NamespaceKey qualifies a column name with the file it came from.
func NamespaceKey(column string, path string) string {
	return column + NamespaceSeparator + path
}

// NamespacedFile holds one input file's rows with every key qualified by the file path.
type NamespacedFile struct {
	Path string
	Rows []Row
}

// Namespaced is the output of the Column Namespacer.
type Namespaced struct {
	// Header is the literal column order of the merged report: the first file's metadata columns,
	// unqualified, followed by every file's client columns, qualified.
	Header []string
	Files  []*NamespacedFile
}

// Namespace rewrites every row of every file so that identically named columns from different files no
// longer collide, and builds the merged report header.
func Namespace(set *Set, clientMarker string) *Namespaced {
	namespaced := &Namespaced{
		Header: make([]string, 0),
		Files:  make([]*NamespacedFile, 0, len(set.Files)),
	}

	for idx, file := range set.Files {
		if idx == 0 {
			namespaced.Header = append(namespaced.Header, file.MetadataColumns(clientMarker)...)
		}

		rows := make([]Row, 0, file.Len())
		for _, row := range file.Rows {
			qualified := orderedmap.NewOrderedMap[string, string]()
			for el := row.Front(); el != nil; el = el.Next() {
				qualified.Set(NamespaceKey(el.Key, file.Path), el.Value)
			}
			rows = append(rows, qualified)
		}

		for _, column := range file.ClientColumns(clientMarker) {
			namespaced.Header = append(namespaced.Header, NamespaceKey(column, file.Path))
		}

		namespaced.Files = append(namespaced.Files, &NamespacedFile{Path: file.Path, Rows: rows})
	}

	return namespaced
}
