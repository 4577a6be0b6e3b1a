package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/doitintl/hello/nova-checkout/common"
	"github.com/doitintl/hello/nova-checkout/logger"
	"github.com/doitintl/hello/nova-checkout/settings/domain"
	settingsService "github.com/doitintl/hello/nova-checkout/settings/service"
)

func settingsCmd(open storeOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Read and update the checkout settings",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, err := cmd.Flags().GetString("settings-file")
			if err != nil {
				return err
			}

			if path != "" {
				return os.Setenv("SETTINGS_FILE", path)
			}

			return nil
		},
	}

	cmd.AddCommand(settingsGetCmd(open))
	cmd.AddCommand(settingsSetCmd(open))
	cmd.AddCommand(settingsInitCmd(open))
	cmd.AddCommand(settingsImportCmd(open))
	cmd.AddCommand(settingsExportCmd(open))

	return cmd
}

// withResolver opens the settings store for the duration of fn.
func withResolver(ctx context.Context, open storeOpener, fn func(r *settingsService.Resolver) error) error {
	store, release, err := open(ctx)
	if err != nil {
		return err
	}
	defer release()

	return fn(settingsService.NewResolver(logger.FromContext, store))
}

func settingsGetCmd(open storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Print the stored settings, or a single key. Secrets are masked.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withResolver(cmd.Context(), open, func(r *settingsService.Resolver) error {
				s, err := r.Stored(cmd.Context())
				if err != nil {
					return err
				}

				s = s.Redacted()

				if len(args) == 0 {
					return writeYAML(cmd.OutOrStdout(), s)
				}

				v, ok := s.Get(domain.Key(args[0]))
				if !ok {
					return fmt.Errorf("%w: %s", domain.ErrUnknownKey, args[0])
				}

				fmt.Fprintln(cmd.OutOrStdout(), v)

				return nil
			})
		},
	}
}

func settingsSetCmd(open storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Update a single settings key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := domain.Key(args[0])

			return withResolver(cmd.Context(), open, func(r *settingsService.Resolver) error {
				if _, err := r.Update(cmd.Context(), func(s *domain.Settings) error {
					return s.Set(key, args[1])
				}); err != nil {
					return err
				}

				if domain.IsSecretKey(key) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s updated\n", key)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, args[1])
				}

				return nil
			})
		},
	}
}

func settingsInitCmd(open storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Fill unset keys with their defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults := domain.Defaults(common.SiteURL)

			return withResolver(cmd.Context(), open, func(r *settingsService.Resolver) error {
				s, err := r.Update(cmd.Context(), func(s *domain.Settings) error {
					for _, key := range domain.Keys {
						if current, _ := s.Get(key); current != "" && current != "false" {
							continue
						}

						if v, _ := defaults.Get(key); v != "" {
							if err := s.Set(key, v); err != nil {
								return err
							}
						}
					}

					return nil
				})
				if err != nil {
					return err
				}

				return writeYAML(cmd.OutOrStdout(), s.Redacted())
			})
		},
	}
}

func settingsImportCmd(open storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Replace the stored settings with the content of a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imported, err := readSettingsFile(args[0])
			if err != nil {
				return err
			}

			return withResolver(cmd.Context(), open, func(r *settingsService.Resolver) error {
				if _, err := r.Update(cmd.Context(), func(s *domain.Settings) error {
					*s = *imported
					return nil
				}); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "imported settings from %s\n", args[0])

				return nil
			})
		},
	}
}

func settingsExportCmd(open storeOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the stored settings as YAML to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			includeSecrets, err := cmd.Flags().GetBool("include-secrets")
			if err != nil {
				return err
			}

			return withResolver(cmd.Context(), open, func(r *settingsService.Resolver) error {
				s, err := r.Stored(cmd.Context())
				if err != nil {
					return err
				}

				if !includeSecrets {
					s = s.Redacted()
				}

				return writeYAML(cmd.OutOrStdout(), s)
			})
		},
	}

	cmd.Flags().Bool("include-secrets", false, "Export secret keys in clear text")

	return cmd
}

func readSettingsFile(path string) (*domain.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s domain.Settings

	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &s, nil
}

func writeYAML(w io.Writer, s *domain.Settings) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(s); err != nil {
		return err
	}

	return enc.Close()
}
