package services

import (
	"context"
	"sort"

	"tasklists/internal/domain"
	"tasklists/internal/repository"
)

// searchServiceImpl implements the SearchService interface
type searchServiceImpl struct {
	repo   repository.Repository
	mapper *domain.Mapper
}

// NewSearchService creates a new SearchService instance
func NewSearchService(repo repository.Repository) SearchService {
	return &searchServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

// SearchTasks returns matching tasks grouped by list name, each with the
// row it occupies in its section
func (s *searchServiceImpl) SearchTasks(ctx context.Context, opts domain.SearchOptions) ([]*TaskMatch, error) {
	lists, err := s.listsToSearch(ctx, opts)
	if err != nil {
		return nil, err
	}

	matches := make([]*TaskMatch, 0)
	for _, listRow := range lists {
		list := s.mapper.TaskList.FromRepository(*listRow)

		rows, err := s.repo.ListTasks(ctx, list.ID)
		if err != nil {
			return nil, err
		}

		var sectionRows [2]int
		for _, task := range s.mapper.Task.FromRepositorySlice(rows) {
			section := task.Section()
			row := sectionRows[section]
			sectionRows[section]++

			if !opts.Matches(*task) {
				continue
			}
			matches = append(matches, &TaskMatch{List: list, Task: *task, Section: section, Row: row})
		}
	}

	return s.sortMatches(matches), nil
}

func (s *searchServiceImpl) listsToSearch(ctx context.Context, opts domain.SearchOptions) ([]*repository.TaskList, error) {
	if opts.ListID == nil {
		return s.repo.ListTaskLists(ctx)
	}
	list, err := s.repo.GetTaskList(ctx, *opts.ListID)
	if err != nil {
		return nil, err
	}
	return []*repository.TaskList{list}, nil
}

// sortMatches orders by list name, then section, then row
func (s *searchServiceImpl) sortMatches(matches []*TaskMatch) []*TaskMatch {
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.List.Name != b.List.Name {
			return a.List.Name < b.List.Name
		}
		if a.Section != b.Section {
			return a.Section < b.Section
		}
		return a.Row < b.Row
	})
	return matches
}
