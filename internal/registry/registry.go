package registry

import (
	"fmt"
	"sort"

	"github.com/PolarWolf314/pm/internal/configs"
	perrors "github.com/PolarWolf314/pm/internal/errors"
	"github.com/PolarWolf314/pm/internal/utils"
)

// Saver persists the whole settings document.
type Saver interface {
	Save(settings *configs.Settings) error
}

// Resolver picks one project out of several sharing a name.
type Resolver interface {
	Resolve(name string, candidates []Project) (*Project, error)
}

// Project is a record decorated with its position in the document.
type Project struct {
	Name  string
	Group string
	configs.ProjectRecord
}

// Registry provides lookups and mutations over the projects section.
type Registry struct {
	store    Saver
	doc      *configs.Settings
	resolver Resolver
}

// New returns a Registry over doc. resolver may be nil, in which case an
// ambiguous bare-name lookup fails with ErrAmbiguousName.
func New(store Saver, doc *configs.Settings, resolver Resolver) *Registry {
	if doc.Projects == nil {
		doc.Projects = make(map[string]map[string]configs.ProjectRecord)
	}
	return &Registry{store: store, doc: doc, resolver: resolver}
}

// Settings returns the document the registry operates on.
func (r *Registry) Settings() *configs.Settings {
	return r.doc
}

// Create adds a project whose folder is dir.
func (r *Registry) Create(name, group, dir string) (*Project, error) {
	return r.CreateRecord(name, group, configs.ProjectRecord{Dir: dir})
}

// CreateRecord adds a project with a fully populated record.
func (r *Registry) CreateRecord(name, group string, rec configs.ProjectRecord) (*Project, error) {
	if err := utils.ValidateName("project", name); err != nil {
		return nil, err
	}
	if err := utils.ValidateName("group", group); err != nil {
		return nil, err
	}
	if rec.Dir == "" {
		return nil, fmt.Errorf("project %q needs a directory", name)
	}
	if _, ok := r.doc.Projects[group][name]; ok {
		return nil, fmt.Errorf("%w: %s in group %s", perrors.ErrAlreadyExists, name, group)
	}

	next := r.doc.CloneProjects()
	if _, ok := next[group]; !ok {
		next[group] = make(map[string]configs.ProjectRecord)
	}
	next[group][name] = rec

	if err := r.commit(next); err != nil {
		return nil, err
	}
	return decorate(name, group, rec), nil
}

// FindExact returns the project name inside group.
func (r *Registry) FindExact(name, group string) (*Project, error) {
	rec, err := r.lookup(name, group)
	if err != nil {
		return nil, err
	}
	return decorate(name, group, rec), nil
}

// FindByName searches every group for name. A single match is returned
// directly; several matches are collected in group order and handed to the
// resolver.
func (r *Registry) FindByName(name string) (*Project, error) {
	var matches []Project
	for _, group := range r.Groups() {
		if rec, ok := r.doc.Projects[group][name]; ok {
			matches = append(matches, *decorate(name, group, rec))
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", perrors.ErrProjectNotFound, name)
	case 1:
		return &matches[0], nil
	}

	if r.resolver == nil {
		return nil, fmt.Errorf("%w: %s (specify a group)", perrors.ErrAmbiguousName, name)
	}
	return r.resolver.Resolve(name, matches)
}

// Find uses FindExact when group is set and FindByName otherwise.
func (r *Registry) Find(name, group string) (*Project, error) {
	if group != "" {
		return r.FindExact(name, group)
	}
	return r.FindByName(name)
}

// Rename moves the project to newName inside the same group. When newDir is
// non-empty the record's directory is replaced as well.
func (r *Registry) Rename(name, group, newName, newDir string) (*Project, error) {
	rec, err := r.lookup(name, group)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateName("project", newName); err != nil {
		return nil, err
	}
	if newName == name && (newDir == "" || newDir == rec.Dir) {
		return decorate(name, group, rec), nil
	}
	if newName != name {
		if _, taken := r.doc.Projects[group][newName]; taken {
			return nil, fmt.Errorf("%w: %s in group %s", perrors.ErrAlreadyExists, newName, group)
		}
	}

	if newDir != "" {
		rec.Dir = newDir
	}
	next := r.doc.CloneProjects()
	delete(next[group], name)
	next[group][newName] = rec

	if err := r.commit(next); err != nil {
		return nil, err
	}
	return decorate(newName, group, rec), nil
}

// Regroup moves the project from oldGroup into newGroup, creating newGroup
// if needed. oldGroup is kept even when it becomes empty.
func (r *Registry) Regroup(name, oldGroup, newGroup string) (*Project, error) {
	rec, err := r.lookup(name, oldGroup)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateName("group", newGroup); err != nil {
		return nil, err
	}
	if newGroup == oldGroup {
		return decorate(name, oldGroup, rec), nil
	}
	if _, taken := r.doc.Projects[newGroup][name]; taken {
		return nil, fmt.Errorf("%w: %s in group %s", perrors.ErrAlreadyExists, name, newGroup)
	}

	next := r.doc.CloneProjects()
	delete(next[oldGroup], name)
	if _, ok := next[newGroup]; !ok {
		next[newGroup] = make(map[string]configs.ProjectRecord)
	}
	next[newGroup][name] = rec

	if err := r.commit(next); err != nil {
		return nil, err
	}
	return decorate(name, newGroup, rec), nil
}

// SetPath replaces the project's directory.
func (r *Registry) SetPath(name, group, newDir string) (*Project, error) {
	if newDir == "" {
		return nil, fmt.Errorf("project %q needs a directory", name)
	}
	return r.update(name, group, func(rec *configs.ProjectRecord) {
		rec.Dir = newDir
	})
}

// SetRepoURL sets or replaces the project's repository URL. An empty url clears it.
func (r *Registry) SetRepoURL(name, group, url string) (*Project, error) {
	return r.update(name, group, func(rec *configs.ProjectRecord) {
		rec.RepoURL = url
	})
}

// Delete removes the project from its group and returns what was removed.
// The group itself is kept.
func (r *Registry) Delete(name, group string) (*Project, error) {
	rec, err := r.lookup(name, group)
	if err != nil {
		return nil, err
	}

	next := r.doc.CloneProjects()
	delete(next[group], name)

	if err := r.commit(next); err != nil {
		return nil, err
	}
	return decorate(name, group, rec), nil
}

// Import adds every project that is not registered yet with a single save
// and returns the ones that were added.
func (r *Registry) Import(projects []Project) ([]Project, error) {
	next := r.doc.CloneProjects()
	var added []Project

	for _, p := range projects {
		if err := utils.ValidateName("project", p.Name); err != nil {
			return nil, err
		}
		if err := utils.ValidateName("group", p.Group); err != nil {
			return nil, err
		}
		if _, exists := next[p.Group][p.Name]; exists {
			continue
		}
		if _, ok := next[p.Group]; !ok {
			next[p.Group] = make(map[string]configs.ProjectRecord)
		}
		next[p.Group][p.Name] = p.ProjectRecord
		added = append(added, p)
	}

	if len(added) == 0 {
		return nil, nil
	}
	if err := r.commit(next); err != nil {
		return nil, err
	}
	return added, nil
}

// Groups returns every group name, sorted.
func (r *Registry) Groups() []string {
	groups := make([]string, 0, len(r.doc.Projects))
	for group := range r.doc.Projects {
		groups = append(groups, group)
	}
	sort.Strings(groups)
	return groups
}

// Projects lists the projects of group, or of every group when group is
// empty, sorted by group and then name.
func (r *Registry) Projects(group string) ([]Project, error) {
	groups := r.Groups()
	if group != "" {
		if _, ok := r.doc.Projects[group]; !ok {
			return nil, fmt.Errorf("%w: %s", perrors.ErrGroupNotFound, group)
		}
		groups = []string{group}
	}

	var projects []Project
	for _, g := range groups {
		names := make([]string, 0, len(r.doc.Projects[g]))
		for name := range r.doc.Projects[g] {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			projects = append(projects, *decorate(name, g, r.doc.Projects[g][name]))
		}
	}
	return projects, nil
}

func (r *Registry) lookup(name, group string) (configs.ProjectRecord, error) {
	projects, ok := r.doc.Projects[group]
	if !ok {
		return configs.ProjectRecord{}, fmt.Errorf("%w: %s", perrors.ErrGroupNotFound, group)
	}
	rec, ok := projects[name]
	if !ok {
		return configs.ProjectRecord{}, fmt.Errorf("%w: %s in group %s", perrors.ErrProjectNotFound, name, group)
	}
	return rec, nil
}

func (r *Registry) update(name, group string, mutate func(*configs.ProjectRecord)) (*Project, error) {
	rec, err := r.lookup(name, group)
	if err != nil {
		return nil, err
	}
	mutate(&rec)

	next := r.doc.CloneProjects()
	next[group][name] = rec

	if err := r.commit(next); err != nil {
		return nil, err
	}
	return decorate(name, group, rec), nil
}

// commit persists a document carrying next and adopts next only on success.
func (r *Registry) commit(next map[string]map[string]configs.ProjectRecord) error {
	candidate := *r.doc
	candidate.Projects = next
	if err := r.store.Save(&candidate); err != nil {
		return err
	}
	r.doc.Projects = next
	return nil
}

func decorate(name, group string, rec configs.ProjectRecord) *Project {
	return &Project{Name: name, Group: group, ProjectRecord: rec}
}
