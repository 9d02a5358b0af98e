package main

import (
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

const demoSource = `package demo

// starlark
//
//	def demo():
//	    """
//	    The demo module.
//	    """
//
//	    @attribute
//	    def answer():
//	        """
//	        The answer.
//	        """
//
//	    @function("greet")
//	    def greet():
//	        pass
//
//starlark:module
var Module = 42

// starlark
//
//	def greet(name, loud=None):
//	    """
//	    Greets name.
//
//	        Indented detail.
//	    """
//
//starlark:builtin factory=NewGreet,function=Greet
func greet(thread *starlark.Thread, fn *starlark.Builtin, name string, loud bool) (starlark.Value, error) {
	return nil, nil
}

// starlark
//
//	def count_all():
//	    """
//	    Counts.
//	    """
//
//starlark:builtin
func count_all(thread *starlark.Thread, fn *starlark.Builtin) (starlark.Value, error) {
	return nil, nil
}

// helper is not a builtin.
func helper() {}
`

func gatherDemo(t *testing.T) ([]objectDecl, []*function) {
	f, err := parser.ParseFile(token.NewFileSet(), "demo.go", demoSource, parser.ParseComments)
	require.NoError(t, err)

	modules, functions, err := gatherFile(f)
	require.NoError(t, err)
	return modules, functions
}

func TestGatherFile(t *testing.T) {
	modules, functions := gatherDemo(t)

	require.Len(t, functions, 2)
	assert.Equal(t, "greet", functions[0].def.Name.Name)
	assert.Equal(t, "NewGreet", functions[0].factoryName)
	assert.Equal(t, "Greet", functions[0].functionName)
	assert.Equal(t, "newCountAll", functions[1].factoryName)
	assert.Equal(t, "starlark_count_all", functions[1].functionName)

	require.Len(t, modules, 1)
	assert.Equal(t, "demo", modules[0].name)
	assert.Equal(t, "The demo module.", modules[0].doc)
	assert.Equal(t, []string{"greet"}, modules[0].methods)
	require.Len(t, modules[0].attributes, 1)
	assert.Equal(t, &attribute{Name: "answer", Docstring: "The answer."}, modules[0].attributes[0])
}

func TestLink(t *testing.T) {
	modules, functions := gatherDemo(t)

	objects, err := link(modules, functions)
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, []*method{{
		Name:      "greet",
		Signature: "(name, loud=None)",
		Docstring: "Greets name.\n\n    Indented detail.",
	}}, objects[0].Methods)

	modules[0].methods = append(modules[0].methods, "missing")
	_, err = link(modules, functions)
	assert.Error(t, err)
}

func TestGenFunctionWrappers(t *testing.T) {
	_, functions := gatherDemo(t)

	pkg := &packages.Package{Types: types.NewPackage("example.com/demo", "demo")}
	src, err := genFunctionWrappers(pkg, functions)
	require.NoError(t, err)

	text := string(src)
	assert.True(t, strings.HasPrefix(text, "// Code generated by starenv-gen-builtins. DO NOT EDIT.\n\npackage demo\n"))
	assert.Contains(t, text, `"github.com/pgavlin/starlark-go/starlark"`)
	assert.Contains(t, text, `return starlark.NewBuiltin("greet", Greet)`)
	assert.Contains(t, text, `starlark.UnpackArgs(fn.Name(), args, kwargs, "name", &name, "loud??", &loud)`)
	assert.Contains(t, text, "return greet(thread, fn, name, loud)")
	assert.Contains(t, text, "if err := starlark.UnpackArgs(fn.Name(), args, kwargs); err != nil {")
	assert.Contains(t, text, "return count_all(thread, fn)")
}

func TestGenFunctionWrapperErrors(t *testing.T) {
	const src = `package demo

// starlark
//
//	def bad(x=1):
//	    pass
//
//starlark:builtin
func bad(thread *starlark.Thread, fn *starlark.Builtin, x int) (starlark.Value, error) {
	return nil, nil
}
`
	f, err := parser.ParseFile(token.NewFileSet(), "bad.go", src, parser.ParseComments)
	require.NoError(t, err)
	_, functions, err := gatherFile(f)
	require.NoError(t, err)

	pkg := &packages.Package{Types: types.NewPackage("example.com/demo", "demo")}
	_, err = genFunctionWrappers(pkg, functions)
	assert.ErrorContains(t, err, "must be None")
}

func TestGenModuleDocs(t *testing.T) {
	modules, functions := gatherDemo(t)
	objects, err := link(modules, functions)
	require.NoError(t, err)

	var docs strings.Builder
	require.NoError(t, genModuleDocs(&docs, objects[0]))

	expected := `demo
====

.. py:module:: demo

The demo module.

.. py:data:: answer

   The answer.

.. py:function:: greet(name, loud=None)

   Greets name.

       Indented detail.

`
	assert.Equal(t, expected, docs.String())
}

func TestCleanDocstring(t *testing.T) {
	assert.Equal(t, "a\n  b\n\nc", cleanDocstring("\n    a\n      b\n\n    c\n    "))
	assert.Equal(t, "", cleanDocstring("\n   \n"))
}
