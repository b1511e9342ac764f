package render

// Banner decorates a data-only block with its sheet name.
func Banner(sheetName string) string {
	return "// ===== " + sheetName + " ====="
}
