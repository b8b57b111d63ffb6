package memory

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"review-task-board/internal/model"
	repo "review-task-board/internal/reviewtask/repository"
)

type seedFile struct {
	Tasks []seedTask `yaml:"tasks" toml:"tasks"`
}

type seedTask struct {
	ID         int      `yaml:"id" toml:"id"`
	Name       string   `yaml:"name" toml:"name"`
	PaperTitle string   `yaml:"paper_title" toml:"paper_title"`
	Authors    []string `yaml:"authors" toml:"authors"`
	Tags       []string `yaml:"tags" toml:"tags"`
	DueDate    string   `yaml:"due_date" toml:"due_date"`
}

// LoadSeed reads tasks from a seed file. Files ending in .toml are decoded
// as TOML, anything else as YAML.
func LoadSeed(path string) ([]model.Task, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToLoad, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOMLSeed(b)
	}
	return ParseSeed(b)
}

// ParseSeed decodes a YAML seed document of the form `tasks: [...]`.
func ParseSeed(b []byte) ([]model.Task, error) {
	var f seedFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToLoad, err)
	}
	return f.toTasks(), nil
}

// ParseTOMLSeed decodes a TOML seed document made of `[[tasks]]` tables.
func ParseTOMLSeed(b []byte) ([]model.Task, error) {
	var f seedFile
	if err := toml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToLoad, err)
	}
	return f.toTasks(), nil
}

func (f seedFile) toTasks() []model.Task {
	tasks := make([]model.Task, len(f.Tasks))
	for i, st := range f.Tasks {
		tasks[i] = model.Task{
			ID:         st.ID,
			Name:       st.Name,
			PaperTitle: st.PaperTitle,
			Authors:    st.Authors,
			Tags:       st.Tags,
			DueDate:    st.DueDate,
		}
	}
	return tasks
}

// DefaultSeed returns the built-in review queue used when no seed file is
// configured.
func DefaultSeed() []model.Task {
	return []model.Task{
		{
			ID:         1,
			Name:       "Find and invite reviewers",
			PaperTitle: "The Impact of Climate Change on Marine Biodiversity",
			Authors:    []string{"Dr. Jane Smith", "Dr. Michael Johnson", "Dr. Emily Davis"},
			Tags:       []string{"reviewer selection", "urgent", "assignment"},
			DueDate:    "2024-12-15",
		},
		{
			ID:         2,
			Name:       "Initial assessment",
			PaperTitle: "Machine Learning Approaches for Genomic Data Analysis",
			Authors:    []string{"Dr. Alan Turing", "Dr. Grace Hopper", "Dr. Rosalind Franklin"},
			Tags:       []string{"manuscript review", "high priority"},
			DueDate:    "2024-12-12",
		},
		{
			ID:         3,
			Name:       "Assess recommendation",
			PaperTitle: "Advances in Quantum Computing for Material Science",
			Authors:    []string{"Dr. Marie Curie", "Dr. Richard Feynman", "Dr. Albert Einstein"},
			Tags:       []string{"decision making", "reject"},
			DueDate:    "2024-12-20",
		},
		{
			ID:         4,
			Name:       "Assess recommendation",
			PaperTitle: "The Role of Gut Microbiota in Metabolic Diseases",
			Authors:    []string{"Dr. Elizabeth Blackwell", "Dr. Jonas Salk", "Dr. Paul Ehrlich"},
			Tags:       []string{"decision making", "accept"},
			DueDate:    "2024-12-18",
		},
		{
			ID:         5,
			Name:       "Assess recommendation",
			PaperTitle: "Renewable Energy Storage Technologies for the Future",
			Authors:    []string{"Dr. Nikola Tesla", "Dr. James Maxwell"},
			Tags:       []string{"decision making", "reject"},
			DueDate:    "2024-12-21",
		},
		{
			ID:         6,
			Name:       "Assess recommendation",
			PaperTitle: "Artificial Intelligence in Personalized Medicine",
			Authors:    []string{"Dr. Claude Shannon", "Dr. Barbara McClintock"},
			Tags:       []string{"decision making", "accept"},
			DueDate:    "2024-12-22",
		},
		{
			ID:         7,
			Name:       "Communicate decision to authors",
			PaperTitle: "Novel Techniques for Early Cancer Detection",
			Authors:    []string{"Dr. Ada Lovelace", "Dr. Charles Darwin"},
			Tags:       []string{"communication", "authors"},
			DueDate:    "2024-12-22",
		},
	}
}
