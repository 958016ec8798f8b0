package tokenizer

// builtinLanguages are registered on first use of the registry.
var builtinLanguages = []*Language{
	{ID: PlainText, Extensions: []string{".txt", ".text", ".log"}},
	{ID: "javascript", Extensions: []string{".js", ".jsx", ".mjs", ".cjs"}, Lexer: "javascript"},
	{ID: "typescript", Extensions: []string{".ts", ".tsx"}, Lexer: "typescript"},
	{ID: "html", Extensions: []string{".html", ".htm"}, Lexer: "html"},
	{ID: "css", Extensions: []string{".css"}, Lexer: "css"},
	{ID: "json", Extensions: []string{".json"}, Lexer: "json"},
	{ID: "go", Extensions: []string{".go"}, Lexer: "go"},
	{ID: "python", Extensions: []string{".py", ".pyw"}, Lexer: "python"},
	{ID: "rust", Extensions: []string{".rs"}, Lexer: "rust"},
	{ID: "markdown", Extensions: []string{".md", ".markdown"}, Lexer: "markdown"},
	{ID: "toml", Extensions: []string{".toml"}, Lexer: "toml"},
	{ID: "yaml", Extensions: []string{".yaml", ".yml"}, Lexer: "yaml"},
}
