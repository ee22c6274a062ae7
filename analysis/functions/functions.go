// Package functions analyzes the native functions attached to a type.
package functions

import (
	"github.com/teranos/girgen/env"
	"github.com/teranos/girgen/library"
	"github.com/teranos/girgen/status"
)

// Info is one function as seen by the generators.
type Info struct {
	// Name is the Rust method name
	Name string
	// CName is the native symbol
	CName   string
	Version *library.Version
	// Throws marks functions returning Result
	Throws     bool
	Parameters int
	Status     status.Status
}

// Analyze returns the functions of typeID with their effective status: the
// owning type's status, or Ignore when the status file excludes the
// function by name.
func Analyze(e *env.Env, typeID library.TypeID) []Info {
	typ := e.Library.Type(typeID)
	if typ == nil {
		return nil
	}

	fullName := typeID.FullName(e.Library)
	typeStatus := e.TypeStatus(fullName)

	infos := make([]Info, 0, len(typ.Functions))
	for _, fn := range typ.Functions {
		st := typeStatus
		if e.Status.FunctionIgnored(fullName, fn.Name) {
			st = status.Ignore
		}
		infos = append(infos, Info{
			Name:       fn.Name,
			CName:      fn.CIdentifier,
			Version:    fn.Version,
			Throws:     fn.Throws,
			Parameters: fn.Parameters,
			Status:     st,
		})
	}
	return infos
}

// Lookup finds the non-ignored function with native name cname.
func Lookup(infos []Info, cname string) (*Info, bool) {
	for i := range infos {
		if infos[i].CName == cname && !infos[i].Status.Ignored() {
			return &infos[i], true
		}
	}
	return nil, false
}
