package capability

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// FileAutomation hands a decision batch to the external OS automation
// collaborator through a file in the hand-off directory. The collaborator
// receives the full decision list, not just the automation entries.
type FileAutomation struct {
	path   string
	logger *zap.Logger
}

// NewFileAutomation creates the automation hand-off.
func NewFileAutomation(handoffDir string, logger *zap.Logger) *FileAutomation {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileAutomation{
		path:   filepath.Join(handoffDir, "automation.data"),
		logger: logger,
	}
}

// Run writes the batch, one entry per line.
func (a *FileAutomation) Run(ctx context.Context, batch []string) error {
	if len(batch) == 0 {
		return nil
	}
	if err := os.WriteFile(a.path, []byte(strings.Join(batch, "\n")+"\n"), 0644); err != nil {
		return fmt.Errorf("automation: failed to write hand-off file: %w", err)
	}
	a.logger.Info("automation batch handed off",
		zap.Int("entries", len(batch)), zap.String("path", a.path))
	return nil
}

// FileVideo hands a video generation query to the external video collaborator.
type FileVideo struct {
	path   string
	logger *zap.Logger
}

// NewFileVideo creates the video hand-off.
func NewFileVideo(handoffDir string, logger *zap.Logger) *FileVideo {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileVideo{
		path:   filepath.Join(handoffDir, "videogeneration.data"),
		logger: logger,
	}
}

// Generate writes the query for the external collaborator to pick up.
func (v *FileVideo) Generate(ctx context.Context, query string) error {
	if err := os.WriteFile(v.path, []byte(query+",True"), 0644); err != nil {
		return fmt.Errorf("video: failed to write hand-off file: %w", err)
	}
	v.logger.Info("video generation handed off",
		zap.String("query", query), zap.String("path", v.path))
	return nil
}
