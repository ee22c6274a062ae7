package codegen

import (
	"fmt"
	"io"
	"strings"

	"github.com/teranos/girgen/analysis/functions"
	"github.com/teranos/girgen/analysis/special"
	"github.com/teranos/girgen/env"
	"github.com/teranos/girgen/logger"
)

// traitRule maps one special operation onto one emitted declaration.
type traitRule struct {
	kind special.Kind
	// applies gates the rule on the whole set of recognized operations
	applies func(specials special.Infos) bool
	// args follow the receiver in the generated call
	args []string
	emit func(typeName, call string, op special.Info) string
}

func always(special.Infos) bool { return true }

// traitRules are evaluated in order. A type with both Compare and Equal
// gets its PartialEq from Equal; Ord always comes from Compare.
var traitRules = []traitRule{
	{
		kind:    special.Compare,
		applies: func(s special.Infos) bool { return !s.HasTrait(special.Equal) },
		args:    []string{"other"},
		emit:    eqCompare,
	},
	{kind: special.Compare, applies: always, args: []string{"other"}, emit: ord},
	{kind: special.Equal, applies: always, args: []string{"other"}, emit: eq},
	{kind: special.Display, applies: always, emit: display},
	{kind: special.Hash, applies: always, emit: hash},
}

// GenerateTraitImpls writes the trait impls backed by the type's special
// functions.
//
// An operation whose function is missing from fns or ignored produces
// nothing. When traitName is set, calls go through the trait
// (Trait::f(self, ...)) instead of inherent methods.
func GenerateTraitImpls(w io.Writer, e *env.Env, typeName string, fns []functions.Info, specials special.Infos, traitName string) error {
	log := logger.Named("codegen")

	for _, rule := range traitRules {
		info, ok := specials.Get(rule.kind)
		if !ok || !rule.applies(specials) {
			continue
		}
		fn, ok := functions.Lookup(fns, info.CName)
		if !ok {
			log.Debugw("Special function not generated", "type", typeName, "kind", rule.kind, "function", info.CName, "status", info.Status)
			continue
		}

		call := generateCall(fn.Name, rule.args, traitName)
		decl := "\n" + VersionCondition(e, fn.Version) + rule.emit(typeName, call, info) + "\n"
		if _, err := io.WriteString(w, decl); err != nil {
			return err
		}
	}
	return nil
}

// generateCall formats a call on the implicit receiver, either as a method
// call or as a fully qualified trait call with self passed first.
func generateCall(funcName string, args []string, traitName string) string {
	if traitName == "" {
		return fmt.Sprintf("self.%s(%s)", funcName, strings.Join(args, ", "))
	}
	return fmt.Sprintf("%s::%s(%s)", traitName, funcName, strings.Join(append([]string{"self"}, args...), ", "))
}

func display(typeName, call string, op special.Info) string {
	body := fmt.Sprintf("f.write_str(&%s)", call)
	if op.Fallible {
		body = fmt.Sprintf(`if let Ok(val) = %s {
            f.write_str(&val)
        } else {
            Err(fmt::Error)
        }`, call)
	}

	return fmt.Sprintf(`impl fmt::Display for %s {
    #[inline]
    fn fmt(&self, f: &mut fmt::Formatter) -> fmt::Result {
        %s
    }
}`, typeName, body)
}

func hash(typeName, call string, _ special.Info) string {
	return fmt.Sprintf(`impl hash::Hash for %s {
    #[inline]
    fn hash<H>(&self, state: &mut H) where H: hash::Hasher {
        hash::Hash::hash(&%s, state)
    }
}`, typeName, call)
}

func eq(typeName, call string, _ special.Info) string {
	return fmt.Sprintf(`impl PartialEq for %s {
    #[inline]
    fn eq(&self, other: &Self) -> bool {
        %s
    }
}

impl Eq for %s {}`, typeName, call, typeName)
}

func eqCompare(typeName, call string, _ special.Info) string {
	return fmt.Sprintf(`impl PartialEq for %s {
    #[inline]
    fn eq(&self, other: &Self) -> bool {
        %s == 0
    }
}

impl Eq for %s {}`, typeName, call, typeName)
}

func ord(typeName, call string, _ special.Info) string {
	return fmt.Sprintf(`impl PartialOrd for %s {
    #[inline]
    fn partial_cmp(&self, other: &Self) -> Option<cmp::Ordering> {
        %s.partial_cmp(&0)
    }
}

impl Ord for %s {
    #[inline]
    fn cmp(&self, other: &Self) -> cmp::Ordering {
        %s.cmp(&0)
    }
}`, typeName, call, typeName, call)
}
