package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bibbank/decisioning/internal/application/dto"
	"github.com/bibbank/decisioning/internal/application/usecase"
	"github.com/bibbank/decisioning/internal/domain/model"
	"github.com/bibbank/decisioning/internal/domain/service"
)

func newEvaluateCommand(root *rootOptions) *cobra.Command {
	var (
		profile     string
		input       string
		tenantID    string
		customerRef string
	)
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a customer profile file",
		Long: `Evaluate reads a YAML (or JSON) feature map and prints the explained
decision. Nothing is persisted; the decision id is only meaningful locally.`,
		Example: `  decisionctl evaluate --profile loan --input customer.yaml
  decisionctl evaluate --profile fd --input customer.json -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			features, err := readFeatures(input)
			if err != nil {
				return err
			}

			logger := root.logger()
			registry, closeRegistry, err := openRegistry(cmd.Context(), root.manifest, logger)
			if err != nil {
				return err
			}
			defer closeRegistry()

			uc := usecase.NewEvaluateDecisionUseCase(
				service.NewDecisionEngine(registry, logger),
				registry,
				&memoryRepo{},
				nil, nil, nil,
				logger,
			)
			resp, err := uc.Execute(cmd.Context(), dto.EvaluateDecisionRequest{
				TenantID:    tenantID,
				CustomerRef: customerRef,
				Profile:     profile,
				Features:    features,
			})
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), root.output, resp)
		},
	}
	cmd.Flags().StringVar(&profile, "profile", "", "Decision profile: fd | loan")
	cmd.Flags().StringVarP(&input, "input", "i", "", "Feature map file (YAML or JSON)")
	cmd.Flags().StringVar(&tenantID, "tenant", "local", "Tenant recorded on the decision")
	cmd.Flags().StringVar(&customerRef, "customer-ref", "", "Customer reference recorded on the decision")
	_ = cmd.MarkFlagRequired("profile")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

// readFeatures decodes a flat feature map. JSON is valid YAML, so one decoder serves both.
func readFeatures(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	var features map[string]any
	if err := yaml.Unmarshal(data, &features); err != nil {
		return nil, fmt.Errorf("parse input %s: %w", path, err)
	}
	if len(features) == 0 {
		return nil, fmt.Errorf("input %s holds no features", path)
	}
	return features, nil
}

// memoryRepo keeps decisions for the lifetime of one command.
type memoryRepo struct {
	mu        sync.Mutex
	decisions map[string]model.Decision
}

func (r *memoryRepo) Save(_ context.Context, d model.Decision) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.decisions == nil {
		r.decisions = make(map[string]model.Decision)
	}
	r.decisions[d.ID()] = d
	return nil
}

func (r *memoryRepo) FindByID(_ context.Context, tenantID, id string) (model.Decision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.decisions[id]
	if !ok || d.TenantID() != tenantID {
		return model.Decision{}, model.ErrDecisionNotFound
	}
	return d, nil
}
