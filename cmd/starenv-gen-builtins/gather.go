package main

import (
	"errors"
	"fmt"
	"go/ast"
	"go/doc/comment"
	"strings"
	"unicode"

	fxs "github.com/pgavlin/fx/v2/slices"
	"github.com/pgavlin/starlark-go/syntax"
	"golang.org/x/tools/go/packages"
)

// A function is a Go function annotated with //starlark:builtin together with its Starlark declaration.
type function struct {
	def          *syntax.DefStmt
	decl         *ast.FuncDecl
	factoryName  string
	functionName string
}

// An object is a documented Starlark module.
type object struct {
	Name       string
	Docstring  string
	Attributes []*attribute
	Methods    []*method
}

type attribute struct {
	Name      string
	Docstring string
}

type method struct {
	Name      string
	Signature string
	Docstring string
}

type objectDecl struct {
	name       string
	doc        string
	attributes []*attribute
	methods    []string
}

// getDocCode returns the code blocks of a doc comment, joined by newlines.
func getDocCode(doc *ast.CommentGroup) string {
	if doc == nil {
		return ""
	}

	var parser comment.Parser
	docs := parser.Parse(doc.Text())
	code := fxs.OfType[*comment.Code](docs.Content)

	var text strings.Builder
	for c := range code {
		if text.Len() != 0 {
			text.WriteByte('\n')
		}
		text.WriteString(c.Text)
	}
	return text.String()
}

func parseDecl(name, text string) (*syntax.DefStmt, error) {
	f, err := syntax.Parse(name+".star", text, syntax.RetainComments)
	if err != nil {
		return nil, fmt.Errorf("parsing declaration for %v: %w", name, err)
	}

	if len(f.Stmts) != 1 {
		return nil, fmt.Errorf("declaration for %v must be of the form `def fn(): ...`", name)
	}
	def, ok := f.Stmts[0].(*syntax.DefStmt)
	if !ok {
		return nil, fmt.Errorf("declaration for %v must be of the form `def fn(): ...`", name)
	}
	return def, nil
}

func pascalCase(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		switch {
		case r == '_':
			upper = true
		case upper:
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// getFunctionNames returns the names of the factory and wrapper generated for funcName. Either may be overridden by
// the annotation, e.g. //starlark:builtin factory=NewGetenv,function=Getenv.
func getFunctionNames(comment *ast.Comment, funcName string) (string, string) {
	factory, function := "new"+pascalCase(funcName), "starlark_"+funcName

	options := strings.Split(comment.Text[len("//starlark:builtin"):], ",")
	for _, option := range options {
		name, value, ok := strings.Cut(strings.TrimSpace(option), "=")
		if !ok {
			continue
		}
		switch name {
		case "factory":
			factory = value
		case "function":
			function = value
		}
	}
	return factory, function
}

func getStarlarkAnnotation(comments *ast.CommentGroup) (*ast.Comment, string, bool) {
	if comments == nil {
		return nil, "", false
	}
	for _, comment := range comments.List {
		if kind, ok := strings.CutPrefix(comment.Text, "//starlark:"); ok {
			if firstSpace := strings.IndexFunc(kind, unicode.IsSpace); firstSpace != -1 {
				kind = kind[:firstSpace]
			}
			return comment, kind, true
		}
	}
	return nil, "", false
}

// parseModuleDecl parses a module declaration of the form
//
//	def module():
//	    """
//	    Module docs
//	    """
//
//	    @attribute
//	    def attr():
//	        """
//	        Attribute docs
//	        """
//
//	    @function("goFunctionName")
//	    def fn():
//	        pass
//
// Functions are documented by their own declarations.
func parseModuleDecl(text string) (*objectDecl, error) {
	f, err := syntax.Parse("module.star", text, syntax.RetainComments)
	if err != nil {
		return nil, fmt.Errorf("parsing module declaration: %w", err)
	}

	if len(f.Stmts) != 1 {
		return nil, errors.New("module declaration must be of the form `def module(): ...`")
	}
	def, ok := f.Stmts[0].(*syntax.DefStmt)
	if !ok {
		return nil, errors.New("module declaration must be of the form `def module(): ...`")
	}

	body := def.Body
	docstring, ok := getDocstring(def)
	if ok {
		body = body[1:]
	}

	module := objectDecl{name: def.Name.Name, doc: docstring}
	for _, s := range body {
		def, ok := s.(*syntax.DefStmt)
		if !ok {
			return nil, errors.New("module declarations must only contain def statements")
		}
		if len(def.Decorators) != 1 {
			return nil, errors.New("module members must be decorated as either attributes or functions")
		}

		switch decorator := def.Decorators[0].Expr.(type) {
		case *syntax.Ident:
			if decorator.Name != "attribute" {
				return nil, fmt.Errorf("unknown decorator %v", decorator.Name)
			}
			docstring, _ := getDocstring(def)
			module.attributes = append(module.attributes, &attribute{Name: def.Name.Name, Docstring: docstring})
		case *syntax.CallExpr:
			if id, ok := decorator.Fn.(*syntax.Ident); !ok || id.Name != "function" {
				return nil, errors.New("module members must be decorated as either attributes or functions")
			}
			if len(decorator.Args) != 1 {
				return nil, errors.New("function decorator expects a single string literal argument")
			}
			lit, ok := decorator.Args[0].(*syntax.Literal)
			if !ok {
				return nil, errors.New("function decorator expects a single string literal argument")
			}
			str, ok := lit.Value.(string)
			if !ok {
				return nil, errors.New("function decorator expects a single string literal argument")
			}
			module.methods = append(module.methods, str)
		default:
			return nil, errors.New("module members must be decorated as either attributes or functions")
		}
	}
	return &module, nil
}

func methodFunction(f *function) *method {
	var sig strings.Builder
	sig.WriteRune('(')
	for i, p := range f.def.Params {
		if i > 0 {
			sig.WriteString(", ")
		}
		switch p := p.(type) {
		case *syntax.Ident:
			sig.WriteString(p.Name)
		case *syntax.BinaryExpr:
			sig.WriteString(p.X.(*syntax.Ident).Name)
			if value, ok := p.Y.(*syntax.Ident); ok {
				sig.WriteRune('=')
				sig.WriteString(value.Name)
			}
		}
	}
	sig.WriteRune(')')

	docstring, _ := getDocstring(f.def)
	return &method{
		Name:      f.def.Name.Name,
		Signature: sig.String(),
		Docstring: docstring,
	}
}

func gatherFile(file *ast.File) ([]objectDecl, []*function, error) {
	var modules []objectDecl
	var functions []*function
	for _, decl := range file.Decls {
		switch decl := decl.(type) {
		case *ast.FuncDecl:
			comment, kind, ok := getStarlarkAnnotation(decl.Doc)
			if !ok || kind != "builtin" {
				continue
			}
			if decl.Recv != nil {
				return nil, nil, fmt.Errorf("builtin %v must not have a receiver", decl.Name.Name)
			}
			def, err := parseDecl(decl.Name.Name, getDocCode(decl.Doc))
			if err != nil {
				return nil, nil, err
			}
			factoryName, functionName := getFunctionNames(comment, decl.Name.Name)
			functions = append(functions, &function{
				def:          def,
				decl:         decl,
				factoryName:  factoryName,
				functionName: functionName,
			})
		case *ast.GenDecl:
			if _, kind, ok := getStarlarkAnnotation(decl.Doc); ok && kind == "module" {
				module, err := parseModuleDecl(getDocCode(decl.Doc))
				if err != nil {
					return nil, nil, err
				}
				modules = append(modules, *module)
			}
		}
	}
	return modules, functions, nil
}

// link resolves the functions named by each module declaration.
func link(moduleDecls []objectDecl, functions []*function) ([]*object, error) {
	funcMap := map[string]*function{}
	for _, f := range functions {
		funcMap[f.decl.Name.Name] = f
	}

	modules := make([]*object, len(moduleDecls))
	for i, mod := range moduleDecls {
		methods := make([]*method, len(mod.methods))
		for j, fn := range mod.methods {
			f, ok := funcMap[fn]
			if !ok {
				return nil, fmt.Errorf("unknown function %v in module %v", fn, mod.name)
			}
			methods[j] = methodFunction(f)
		}

		modules[i] = &object{
			Name:       mod.name,
			Docstring:  mod.doc,
			Attributes: mod.attributes,
			Methods:    methods,
		}
	}
	return modules, nil
}

func gatherPackage(pkg *packages.Package) ([]*object, []*function, error) {
	var moduleDecls []objectDecl
	var functions []*function
	for _, f := range pkg.Syntax {
		ms, fs, err := gatherFile(f)
		if err != nil {
			return nil, nil, err
		}
		moduleDecls = append(moduleDecls, ms...)
		functions = append(functions, fs...)
	}

	modules, err := link(moduleDecls, functions)
	if err != nil {
		return nil, nil, err
	}
	return modules, functions, nil
}
