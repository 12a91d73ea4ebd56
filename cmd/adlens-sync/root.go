package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"adlens/internal/app"
	"adlens/internal/config"
	"adlens/internal/core/domain"
	"adlens/internal/core/port"
	"adlens/internal/db"
)

// services is the slice of the application the commands drive.
type services struct {
	clients   port.ClientUseCase
	sync      port.SyncUseCase
	campaigns port.CampaignRepository
	close     func() error
}

type deps struct {
	load    func() (config.Config, error)
	open    func(ctx context.Context, cfg config.Config, logger *slog.Logger) (*services, error)
	migrate func(addr string) error
	stdout  io.Writer
	stderr  io.Writer
}

func defaultDeps() deps {
	return deps{
		load: config.Load,
		open: func(ctx context.Context, cfg config.Config, logger *slog.Logger) (*services, error) {
			a, err := app.New(ctx, cfg, logger)
			if err != nil {
				return nil, err
			}
			return &services{clients: a.Clients, sync: a.Sync, campaigns: a.CampaignRepo, close: a.Close}, nil
		},
		migrate: db.Migrate,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
}

func newRootCmd(rt deps) *cobra.Command {
	var (
		cfg    config.Config
		logger *slog.Logger
	)
	root := &cobra.Command{
		Use:           "adlens-sync",
		Short:         "Sync ad platform campaigns into adlens",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if cfg, err = rt.load(); err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			logger = cfg.Log.New(rt.stderr)
			return nil
		},
	}
	root.SetOut(rt.stdout)
	root.SetErr(rt.stderr)

	withServices := func(cmd *cobra.Command, fn func(ctx context.Context, s *services) error) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		s, err := rt.open(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer func() {
			if s.close == nil {
				return
			}
			if err := s.close(); err != nil {
				logger.Error("close error", slog.Any("error", err))
			}
		}()
		return fn(ctx, s)
	}

	root.AddCommand(
		newSyncCmd(withServices),
		newSyncAllCmd(withServices),
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply database migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := rt.migrate(cfg.Psql.Addr.String()); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
				return nil
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Create demo clients and campaigns",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withServices(cmd, func(ctx context.Context, s *services) error {
					return db.Seed(ctx, s.clients, s.campaigns, logger)
				})
			},
		},
	)
	return root
}

type serviceRunner func(cmd *cobra.Command, fn func(ctx context.Context, s *services) error) error

type rangeFlags struct {
	from, to string
}

func (f *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "", "first day to sync (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.to, "to", "", "last day to sync (YYYY-MM-DD)")
	cmd.MarkFlagsRequiredTogether("from", "to")
}

// dateRange returns nil when neither bound is set.
func (f *rangeFlags) dateRange() (*domain.DateRange, error) {
	if f.from == "" && f.to == "" {
		return nil, nil
	}
	start, err := time.Parse(domain.DateFormat, f.from)
	if err != nil {
		return nil, fmt.Errorf("%w: --from: %v", port.ErrInvalidArgument, err)
	}
	end, err := time.Parse(domain.DateFormat, f.to)
	if err != nil {
		return nil, fmt.Errorf("%w: --to: %v", port.ErrInvalidArgument, err)
	}
	return &domain.DateRange{Start: start, End: end}, nil
}

func newSyncCmd(run serviceRunner) *cobra.Command {
	var (
		client, platform string
		rf               rangeFlags
	)
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync one platform for a client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := domain.ParsePlatform(platform)
			if err != nil {
				return err
			}
			dr, err := rf.dateRange()
			if err != nil {
				return err
			}
			return run(cmd, func(ctx context.Context, s *services) error {
				id, err := resolveClient(ctx, s.clients, client)
				if err != nil {
					return err
				}
				res, err := s.sync.Sync(ctx, id, p, dr)
				if err != nil {
					return fmt.Errorf("sync %s: %w", p, err)
				}
				return printJSON(cmd.OutOrStdout(), res)
			})
		},
	}
	cmd.Flags().StringVar(&client, "client", "", "client id or slug")
	cmd.Flags().StringVar(&platform, "platform", "", "platform slug")
	_ = cmd.MarkFlagRequired("client")
	_ = cmd.MarkFlagRequired("platform")
	rf.register(cmd)
	return cmd
}

func newSyncAllCmd(run serviceRunner) *cobra.Command {
	var (
		client string
		rf     rangeFlags
	)
	cmd := &cobra.Command{
		Use:   "sync-all",
		Short: "Sync every connected platform for a client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dr, err := rf.dateRange()
			if err != nil {
				return err
			}
			return run(cmd, func(ctx context.Context, s *services) error {
				id, err := resolveClient(ctx, s.clients, client)
				if err != nil {
					return err
				}
				outcomes, err := s.sync.SyncAll(ctx, id, dr)
				if err != nil {
					return fmt.Errorf("sync all: %w", err)
				}
				if err = printJSON(cmd.OutOrStdout(), outcomes); err != nil {
					return err
				}
				for _, o := range outcomes {
					if o.Error != "" {
						return fmt.Errorf("%s: %s", o.Platform, o.Error)
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&client, "client", "", "client id or slug")
	_ = cmd.MarkFlagRequired("client")
	rf.register(cmd)
	return cmd
}

// resolveClient accepts either a client id or a slug.
func resolveClient(ctx context.Context, clients port.ClientUseCase, ref string) (uuid.UUID, error) {
	if id, err := uuid.Parse(ref); err == nil {
		c, err := clients.GetClient(ctx, id)
		if err != nil {
			return uuid.Nil, err
		}
		return c.ID, nil
	}
	c, err := clients.GetClientBySlug(ctx, ref)
	if err != nil {
		return uuid.Nil, err
	}
	return c.ID, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
