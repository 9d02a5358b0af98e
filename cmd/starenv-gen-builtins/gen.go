package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"go/ast"
	"go/format"
	"go/types"
	"io"
	"path"
	"slices"
	"strings"
	"text/template"

	"github.com/pgavlin/starlark-go/syntax"
	"golang.org/x/tools/go/packages"
)

const starlarkPackage = "github.com/pgavlin/starlark-go/starlark"

// getDocstring returns the cleaned docstring of a def statement, if any.
func getDocstring(def *syntax.DefStmt) (string, bool) {
	body := def.Body
	if len(body) == 0 {
		return "", false
	}
	expr, ok := body[0].(*syntax.ExprStmt)
	if !ok {
		return "", false
	}
	lit, ok := expr.X.(*syntax.Literal)
	if !ok || lit.Token != syntax.STRING {
		return "", false
	}
	return cleanDocstring(lit.Value.(string)), true
}

// cleanDocstring trims leading and trailing blank lines and removes the indentation common to all non-blank lines.
func cleanDocstring(doc string) string {
	lines := strings.Split(strings.TrimRight(doc, " \t\n"), "\n")
	for len(lines) != 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}

	indent := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		n := len(l) - len(strings.TrimLeft(l, " \t"))
		if indent == -1 || n < indent {
			indent = n
		}
	}
	for i, l := range lines {
		if len(l) >= indent {
			lines[i] = strings.TrimRight(l[indent:], " \t")
		} else {
			lines[i] = ""
		}
	}
	return strings.Join(lines, "\n")
}

func typeStringImpl(w io.Writer, imports importSet, pkg *packages.Package, x ast.Expr) {
	if x == nil {
		return
	}

	switch x := x.(type) {
	case *ast.Ident:
		fmt.Fprint(w, x.Name)
	case *ast.SelectorExpr:
		if imports != nil {
			if t, ok := pkg.TypesInfo.Types[x].Type.(*types.Named); ok {
				pkg := t.Obj().Pkg()
				imports.add(pkg.Name(), pkg.Path())
			}
		}
		typeStringImpl(w, imports, pkg, x.X)
		fmt.Fprint(w, "."+x.Sel.Name)
	case *ast.ArrayType:
		fmt.Fprint(w, "[")
		typeStringImpl(w, imports, pkg, x.Len)
		fmt.Fprint(w, "]")
		typeStringImpl(w, imports, pkg, x.Elt)
	case *ast.MapType:
		fmt.Fprint(w, "map[")
		typeStringImpl(w, imports, pkg, x.Key)
		fmt.Fprint(w, "]")
		typeStringImpl(w, imports, pkg, x.Value)
	case *ast.StarExpr:
		fmt.Fprint(w, "*")
		typeStringImpl(w, imports, pkg, x.X)
	default:
		panic(fmt.Errorf("parameter types must be identifiers, selectors, arrays, slices, maps, or pointers"))
	}
}

func typeString(imports importSet, pkg *packages.Package, x ast.Expr) (type_ string, err error) {
	defer func() {
		if x := recover(); x != nil {
			if e, ok := x.(error); ok {
				err = e
				return
			}
			panic(x)
		}
	}()

	var buf strings.Builder
	typeStringImpl(&buf, imports, pkg, x)
	return buf.String(), nil
}

//go:embed function_wrappers.tmpl
var functionWrappersTemplateText string
var functionWrappersTemplate = template.Must(template.New("FunctionWrappers").Parse(functionWrappersTemplateText))

type packageImport struct {
	Name string
	Path string
}

type importSet map[string]packageImport

// add records an import. The name is only kept if it differs from the last element of the path.
func (s importSet) add(name, importPath string) {
	if name == path.Base(importPath) {
		name = ""
	}
	s[importPath] = packageImport{Name: name, Path: importPath}
}

type functionParam struct {
	Name string
	Def  string
	Type string
}

type functionData struct {
	Name         string
	FactoryName  string
	FunctionName string
	Def          string
	Params       []functionParam
}

func genFunctionWrapper(imports importSet, pkg *packages.Package, f *function) (*functionData, error) {
	data := functionData{
		Name:         f.decl.Name.Name,
		FactoryName:  f.factoryName,
		FunctionName: f.functionName,
		Def:          f.def.Name.Name,
	}

	paramList := f.decl.Type.Params.List
	if len(paramList) < 2 {
		return nil, fmt.Errorf("function %v must have a signature of the form func(*starlark.Thread, *starlark.Builtin, ...)", data.Name)
	}

	for _, p := range paramList[2:] {
		if len(p.Names) == 0 {
			return nil, fmt.Errorf("all parameters to function %v must be named", data.Name)
		}
		type_, err := typeString(imports, pkg, p.Type)
		if err != nil {
			return nil, err
		}

		for _, id := range p.Names {
			data.Params = append(data.Params, functionParam{
				Name: id.Name,
				Type: type_,
			})
		}
	}

	if len(f.def.Params) != len(data.Params) {
		return nil, fmt.Errorf("definition and declaration of %v have different parameter counts", data.Name)
	}
	for i, p := range f.def.Params {
		name, sigil := "", ""
		switch p := p.(type) {
		case *syntax.Ident:
			name = p.Name
		case *syntax.BinaryExpr:
			name = p.X.(*syntax.Ident).Name
			value, ok := p.Y.(*syntax.Ident)
			if !ok || value.Name != "None" {
				return nil, fmt.Errorf("default value for parameter %v in function %v must be None", name, data.Name)
			}
			sigil = "??"
		default:
			return nil, fmt.Errorf("unsupported parameter %v in function %v", i, data.Name)
		}
		data.Params[i].Def = name + sigil
	}

	return &data, nil
}

// genFunctionWrappers generates the argument-unpacking wrappers and factories for the given functions. The result is
// gofmt-formatted.
func genFunctionWrappers(pkg *packages.Package, fns []*function) ([]byte, error) {
	var data struct {
		Package   string
		Imports   []packageImport
		Functions []*functionData
	}

	imports := importSet{}
	imports.add("starlark", starlarkPackage)

	for _, fn := range fns {
		fnData, err := genFunctionWrapper(imports, pkg, fn)
		if err != nil {
			return nil, err
		}
		data.Functions = append(data.Functions, fnData)
	}
	slices.SortFunc(data.Functions, func(a, b *functionData) int {
		return strings.Compare(a.FunctionName, b.FunctionName)
	})

	data.Imports = make([]packageImport, 0, len(imports))
	for _, imp := range imports {
		data.Imports = append(data.Imports, imp)
	}
	slices.SortFunc(data.Imports, func(a, b packageImport) int {
		return strings.Compare(a.Path, b.Path)
	})

	data.Package = pkg.Types.Name()

	var buf bytes.Buffer
	if err := functionWrappersTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

//go:embed object_docs.tmpl
var objectDocsTemplateText string
var objectDocsTemplate = template.Must(template.New("Object").Funcs(template.FuncMap{
	"underline": func(s string) string { return strings.Repeat("=", len(s)) },
	"indent": func(n int, s string) string {
		prefix := strings.Repeat(" ", n)
		lines := strings.Split(s, "\n")
		for i, l := range lines {
			if l != "" {
				lines[i] = prefix + l
			}
		}
		return strings.Join(lines, "\n")
	},
}).Parse(objectDocsTemplateText))

func genModuleDocs(w io.Writer, m *object) error {
	return objectDocsTemplate.Execute(w, m)
}
