// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build debug && !baremetal && !kdebug_notext

package debug

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"strings"
	"sync"
)

const withText = true

type source struct {
	fset *token.FileSet
	file *ast.File
	src  []byte
}

// sources caches parsed files by name. Files that cannot be read or parsed
// are stored as nil so they are tried once.
var sources sync.Map

func loadSource(name string) *source {
	if v, ok := sources.Load(name); ok {
		return v.(*source)
	}

	var s *source
	if src, err := os.ReadFile(name); err == nil {
		fset := token.NewFileSet()
		if f, err := parser.ParseFile(fset, name, src, parser.SkipObjectResolution); err == nil {
			s = &source{fset: fset, file: f, src: src}
		}
	}
	v, _ := sources.LoadOrStore(name, s)
	return v.(*source)
}

// condText returns the text of the first argument of the call to fn that
// spans line in file, or "" if it cannot be found.
func condText(file string, line int, fn string) string {
	s := loadSource(file)
	if s == nil {
		return ""
	}

	var call *ast.CallExpr
	ast.Inspect(s.file, func(n ast.Node) bool {
		if n == nil || call != nil {
			return call == nil
		}
		if s.fset.Position(n.Pos()).Line > line || s.fset.Position(n.End()).Line < line {
			return false
		}
		if c, ok := n.(*ast.CallExpr); ok && len(c.Args) > 0 && calleeName(c.Fun) == fn {
			call = c
			return false
		}
		return true
	})
	if call == nil {
		return ""
	}

	arg := call.Args[0]
	text := string(s.src[s.fset.Position(arg.Pos()).Offset:s.fset.Position(arg.End()).Offset])
	return strings.Join(strings.Fields(text), " ")
}

func calleeName(fun ast.Expr) string {
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	case *ast.IndexExpr:
		return calleeName(f.X)
	case *ast.IndexListExpr:
		return calleeName(f.X)
	case *ast.ParenExpr:
		return calleeName(f.X)
	}
	return ""
}
