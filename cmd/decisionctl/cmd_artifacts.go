package main

import (
	"github.com/spf13/cobra"

	"github.com/bibbank/decisioning/internal/domain/port"
	"github.com/bibbank/decisioning/internal/domain/valueobject"
	"github.com/bibbank/decisioning/internal/infrastructure/oracle"
)

func newArtifactsCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "artifacts",
		Short: "Inspect oracle artifact sets",
	}
	cmd.AddCommand(newArtifactsVerifyCommand(root))
	return cmd
}

type artifactReport struct {
	Manifest string          `json:"manifest"`
	Version  string          `json:"version"`
	Digest   string          `json:"digest"`
	Profiles []profileReport `json:"profiles"`
}

type profileReport struct {
	Profile  string              `json:"profile"`
	Models   []string            `json:"models"`
	Encoders map[string][]string `json:"encoders"`
}

func newArtifactsVerifyCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check checksums, schemas and feature compatibility of a manifest",
		Long: `Verify loads every artifact the manifest names exactly as the service
would: checksums must match, documents must satisfy the embedded schemas and
every model feature must be declared by its profile.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := oracle.ReadManifest(root.manifest)
			if err != nil {
				return err
			}
			loader, err := oracle.NewLoader()
			if err != nil {
				return err
			}
			defer loader.Close()

			snap, err := loader.Load(cmd.Context(), m)
			if err != nil {
				return err
			}

			report := artifactReport{Manifest: root.manifest, Version: snap.Version(), Digest: snap.Digest()}
			for _, name := range snap.Profiles() {
				profile, err := valueobject.ProfileFromString(name)
				if err != nil {
					return err
				}
				o, _ := snap.Oracle(profile)
				pr := profileReport{Profile: profile.String(), Encoders: map[string][]string{}}
				for _, role := range []port.ModelRole{port.RoleEligibility, port.RoleRate, port.RoleAmount} {
					if _, ok := o.Model(role); ok {
						pr.Models = append(pr.Models, string(role))
					}
				}
				enc := o.Encodings()
				for _, field := range enc.Fields() {
					pr.Encoders[field], _ = enc.Classes(field)
				}
				report.Profiles = append(report.Profiles, pr)
			}
			return render(cmd.OutOrStdout(), root.output, report)
		},
	}
}
