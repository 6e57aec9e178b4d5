package mapping

import (
	"errors"
	"fmt"
	"strings"

	"hash-mapper/internal/common"
	"hash-mapper/internal/diagnostic"
	"hash-mapper/internal/match"
	"hash-mapper/mapper"
)

// maxSuggestions caps the "did you mean" list of a diagnostic.
const maxSuggestions = 3

// Validate checks a mapping definition against the registry. It resolves
// every name the file uses, parses every path and looks for inheritance
// cycles, without building anything.
func Validate(mf *MappingFile, reg *Registry) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		res.AddError("mapping_is_nil", "mapping file is nil", "", "")
		return res
	}

	if reg == nil {
		res.AddError("registry_is_nil", "registry is nil", "", "")
		return res
	}

	if mf.Version != CurrentVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported mapping version %q, expected %q", mf.Version, CurrentVersion), "", "")
	}

	names := validateNames(res, mf)

	for i := range mf.Mappers {
		md := &mf.Mappers[i]

		validateReferences(res, md, names)
		validateHooks(res, md, reg)

		for j := range md.Rules {
			validateRule(res, md.Name, &md.Rules[j], names, reg)
		}

		validateShadowing(res, mf, md)

		if common.IsEmpty(md.Rules) && md.Extends == "" && common.IsEmpty(md.Imports) {
			res.AddInfo("empty_mapper", "mapper declares no rules", md.Name, "")
		}
	}

	validateCycles(res, mf)

	return res
}

// validateNames reports empty and duplicate names and returns the known ones.
func validateNames(res *diagnostic.Diagnostics, mf *MappingFile) []string {
	seen := make(map[string]struct{}, len(mf.Mappers))
	names := make([]string, 0, len(mf.Mappers))

	for i := range mf.Mappers {
		name := mf.Mappers[i].Name
		if name == "" {
			res.AddError("empty_mapper_name", fmt.Sprintf("mapper #%d has no name", i+1), "", "")
			continue
		}

		if _, ok := seen[name]; ok {
			res.AddError("duplicate_mapper", fmt.Sprintf("duplicate mapper %q", name), name, "")
			continue
		}

		seen[name] = struct{}{}
		names = append(names, name)
	}

	return names
}

func validateReferences(res *diagnostic.Diagnostics, md *MapperDef, names []string) {
	if md.Extends != "" {
		checkMapperRef(res, md.Name, "extends", md.Extends, names)
	}

	for _, imp := range md.Imports {
		checkMapperRef(res, md.Name, "imports", imp, names)
	}
}

func checkMapperRef(res *diagnostic.Diagnostics, owner, field, ref string, names []string) {
	for _, n := range names {
		if n == ref {
			return
		}
	}

	res.AddError("unknown_mapper",
		fmt.Sprintf("%s refers to unknown mapper %q", field, ref),
		owner, ref, match.Suggest(ref, names, maxSuggestions)...)
}

func validateHooks(res *diagnostic.Diagnostics, md *MapperDef, reg *Registry) {
	kindNames := hookKindNames()

	for _, kindName := range common.SortedKeys(md.Hooks) {
		kind, ok := mapper.ParseHookKind(kindName)
		if !ok {
			res.AddError("unknown_hook_kind",
				fmt.Sprintf("unknown hook kind %q", kindName),
				md.Name, kindName, match.Suggest(kindName, kindNames, maxSuggestions)...)

			continue
		}

		for _, hookName := range md.Hooks[kindName] {
			h := reg.Hook(hookName)
			if h == nil {
				res.AddError("unknown_hook",
					fmt.Sprintf("unknown hook %q", hookName),
					md.Name, kindName, match.Suggest(hookName, reg.HookNames(), maxSuggestions)...)

				continue
			}

			if !h.Allows(kind) {
				res.AddError("hook_kind_mismatch",
					fmt.Sprintf("hook %q cannot run as %s", hookName, kindName),
					md.Name, kindName)
			}
		}
	}
}

func validateRule(res *diagnostic.Diagnostics, owner string, rd *RuleDef, names []string, reg *Registry) {
	where := ruleLabel(rd)

	if _, err := mapper.ParsePath(rd.From); err != nil {
		res.AddError("malformed_path", fmt.Sprintf("from: %v", err), owner, where)
	}

	if _, err := mapper.ParsePath(rd.To); err != nil {
		res.AddError("malformed_path", fmt.Sprintf("to: %v", err), owner, where)
	}

	if rd.Using != "" {
		checkMapperRef(res, owner, "using", rd.Using, names)
	}

	for _, name := range common.Dedup(append(append([]string{}, rd.Filter.From...), rd.Filter.To...)) {
		if !reg.HasFilter(name) {
			res.AddError("unknown_filter",
				fmt.Sprintf("unknown filter %q", name),
				owner, where, match.Suggest(name, reg.FilterNames(), maxSuggestions)...)
		}
	}
}

// validateShadowing warns about rules that can never write because an
// earlier rule targets the same path. Inherited and imported rules run
// first, so they are seeded before the mapper's own rules.
func validateShadowing(res *diagnostic.Diagnostics, mf *MappingFile, md *MapperDef) {
	seenTo := map[string]string{}
	seenFrom := map[string]string{}

	for _, ir := range inheritedRules(mf, md) {
		label := fmt.Sprintf("%s (inherited from %q)", ruleLabel(ir.rule), ir.owner)

		if key, ok := canonicalPath(ir.rule.To); ok {
			if _, dup := seenTo[key]; !dup {
				seenTo[key] = label
			}
		}

		if key, ok := canonicalPath(ir.rule.From); ok {
			if _, dup := seenFrom[key]; !dup {
				seenFrom[key] = label
			}
		}
	}

	for j := range md.Rules {
		rd := &md.Rules[j]

		if key, ok := canonicalPath(rd.To); ok {
			if prev, dup := seenTo[key]; dup {
				res.AddWarning("shadowed_rule",
					fmt.Sprintf("normalize target %q is already written by %s", rd.To, prev),
					md.Name, ruleLabel(rd))
			} else {
				seenTo[key] = ruleLabel(rd)
			}
		}

		if key, ok := canonicalPath(rd.From); ok {
			if prev, dup := seenFrom[key]; dup {
				res.AddWarning("shadowed_rule",
					fmt.Sprintf("denormalize target %q is already written by %s", rd.From, prev),
					md.Name, ruleLabel(rd))
			} else {
				seenFrom[key] = ruleLabel(rd)
			}
		}
	}
}

type ownedRule struct {
	owner string
	rule  *RuleDef
}

// inheritedRules lists the rules md gets from extends and imports, in the
// order the compiled mapper runs them. Unknown names are skipped and each
// mapper is expanded at most once per chain, so cycles terminate.
func inheritedRules(mf *MappingFile, md *MapperDef) []ownedRule {
	var (
		out     []ownedRule
		visit   func(name string)
		onChain = map[string]bool{md.Name: true}
	)

	visit = func(name string) {
		def := mf.Find(name)
		if def == nil || onChain[name] {
			return
		}

		onChain[name] = true
		defer delete(onChain, name)

		for _, dep := range def.Dependencies() {
			visit(dep)
		}

		for j := range def.Rules {
			out = append(out, ownedRule{owner: def.Name, rule: &def.Rules[j]})
		}
	}

	for _, dep := range md.Dependencies() {
		visit(dep)
	}

	return out
}

func validateCycles(res *diagnostic.Diagnostics, mf *MappingFile) {
	_, err := buildOrder(len(mf.Mappers), dependencyIndices(mf))
	if err == nil {
		return
	}

	var ce *cycleError
	if !errors.As(err, &ce) {
		res.AddError("inheritance_cycle", err.Error(), "", "")
		return
	}

	involved := make([]string, 0, len(ce.nodes))
	for _, i := range ce.nodes {
		involved = append(involved, mf.Mappers[i].Name)
	}

	res.AddError("inheritance_cycle",
		"extends/imports form a cycle through: "+strings.Join(involved, ", "), "", "")
}

func canonicalPath(raw string) (string, bool) {
	p, err := mapper.ParsePath(raw)
	if err != nil {
		return "", false
	}

	parts := make([]string, 0, p.Size())
	for _, seg := range p.Segments() {
		parts = append(parts, seg.String())
	}

	return strings.Join(parts, mapper.Separator), true
}

func ruleLabel(rd *RuleDef) string {
	return rd.From + " -> " + rd.To
}

func hookKindNames() []string {
	return []string{"before_normalize", "before_denormalize", "after_normalize", "after_denormalize"}
}
