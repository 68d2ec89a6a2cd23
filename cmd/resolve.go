package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"cotiza/internal/model"
)

// resolveProject finds a project by 1-based position, full id, unique id
// prefix, or exact name. Command arguments accept any of these so users
// never have to type a whole UUID.
func resolveProject(b model.Budget, ref string) (model.Project, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(b.Projects) {
			return model.Project{}, fmt.Errorf("no project at position %d (have %d)", n, len(b.Projects))
		}
		return b.Projects[n-1], nil
	}

	var matches []model.Project
	for _, p := range b.Projects {
		if p.ID == ref || p.Name == ref {
			return p, nil
		}
		if strings.HasPrefix(p.ID, ref) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return model.Project{}, fmt.Errorf("no project matching %q", ref)
	default:
		return model.Project{}, fmt.Errorf("%q matches %d projects, be more specific", ref, len(matches))
	}
}

// resolveItem finds an item within a project by 1-based position, full id,
// or unique id prefix.
func resolveItem(p model.Project, ref string) (model.BudgetItem, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(p.Items) {
			return model.BudgetItem{}, fmt.Errorf("no item at position %d (have %d)", n, len(p.Items))
		}
		return p.Items[n-1], nil
	}

	var matches []model.BudgetItem
	for _, it := range p.Items {
		if it.ID == ref {
			return it, nil
		}
		if strings.HasPrefix(it.ID, ref) {
			matches = append(matches, it)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return model.BudgetItem{}, fmt.Errorf("no item matching %q", ref)
	default:
		return model.BudgetItem{}, fmt.Errorf("%q matches %d items, be more specific", ref, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
