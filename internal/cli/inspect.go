package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/doro/internal/presentation/graph"
	"github.com/aretw0/doro/internal/presentation/tui"
	"github.com/aretw0/doro/pkg/adapters/file"
	"github.com/aretw0/doro/pkg/config"
	"github.com/aretw0/doro/pkg/domain"
)

// PrintStates writes the behavior states as a rendered table, or as a
// Mermaid flowchart when mermaid is set.
func PrintStates(w io.Writer, mermaid, plain bool) error {
	if mermaid {
		_, err := fmt.Fprint(w, graph.GenerateMermaid(domain.Behavior, nil))
		return err
	}
	render, err := tui.NewRenderer(plain)
	if err != nil {
		return err
	}
	out, err := render(tui.StatesMarkdown(domain.StateDocs, domain.PetState(-1)))
	if err != nil {
		return fmt.Errorf("failed to render states: %w", err)
	}
	_, err = fmt.Fprint(w, out)
	return err
}

// ValidateConfig loads the configuration at path and reports every
// out-of-range value.
func ValidateConfig(ctx context.Context, w io.Writer, path string) error {
	_, settings, err := loadConfig(ctx, file.NewConfigStore(path))
	if err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	fmt.Fprintln(w, "Configuration is valid! ✅")
	return nil
}

// PrintConfig writes the effective configuration (defaults overlaid with
// the file at path) as YAML.
func PrintConfig(ctx context.Context, w io.Writer, path string) error {
	cfg, _, err := loadConfig(ctx, file.NewConfigStore(path))
	if err != nil {
		return err
	}
	data, err := cfg.EncodeYAML()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// InitConfig writes the defaults to path, refusing to overwrite unless force is set.
func InitConfig(ctx context.Context, w io.Writer, path string, force bool) error {
	store := file.NewConfigStore(path)
	if !force {
		existing, err := store.Load(ctx)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return fmt.Errorf("%s already exists, use --force to overwrite", store.Path)
		}
	}
	if err := store.Save(ctx, config.Defaults()); err != nil {
		return err
	}
	printSystemMessage(w, "Wrote defaults to %s", store.Path)
	return nil
}
