package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/KirkDiggler/sylk/internal/common/uuid"
	"github.com/KirkDiggler/sylk/internal/random"
	"github.com/KirkDiggler/sylk/internal/repositories/member"
	"github.com/KirkDiggler/sylk/internal/services/messaging"
	"github.com/KirkDiggler/sylk/internal/services/roster"
	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
)

func newLogger(cfg *Config, w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "sylk",
	})

	if cfg.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return logger
}

func newRandom(cfg *Config) *random.Rand {
	return random.New(&random.Config{Seed: cfg.seed})
}

func newMemberRepo(ctx context.Context, cfg *Config, logger *log.Logger) (member.Repository, func(), error) {
	if cfg.redisAddr == "" {
		repo, err := member.NewFile(&member.FileConfig{Path: cfg.dataFile})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create roster file repository: %w", err)
		}

		logger.Debug("Using roster file", "path", cfg.dataFile)
		return repo, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.redisAddr,
		Password: cfg.redisPassword,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	repo, err := member.NewRedis(&member.Config{RedisClient: client})
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to create roster repository: %w", err)
	}

	logger.Debug("Using redis", "addr", cfg.redisAddr)
	return repo, func() { _ = client.Close() }, nil
}

// services is everything a command needs to play with a roster
type services struct {
	roster    roster.Service
	messaging messaging.Service
	random    *random.Rand
	logger    *log.Logger
	close     func()
}

func newServices(ctx context.Context, cfg *Config, logOut io.Writer) (*services, error) {
	logger := newLogger(cfg, logOut)

	repo, closeRepo, err := newMemberRepo(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	rosterService, err := roster.New(&roster.Config{
		MemberRepo:    repo,
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
	if err != nil {
		closeRepo()
		return nil, fmt.Errorf("failed to create roster service: %w", err)
	}

	src := newRandom(cfg)

	messagingService, err := messaging.NewService(&messaging.ServiceConfig{Random: src})
	if err != nil {
		closeRepo()
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	return &services{
		roster:    rosterService,
		messaging: messagingService,
		random:    src,
		logger:    logger,
		close:     closeRepo,
	}, nil
}

// members lists the configured roster
func (s *services) members(ctx context.Context, cfg *Config) (*roster.ListMembersOutput, error) {
	return s.roster.ListMembers(ctx, &roster.ListMembersInput{RosterID: cfg.roster})
}

// notice renders err the way players see it
func (s *services) notice(ctx context.Context, err error) error {
	msg, msgErr := s.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		return err
	}
	return fmt.Errorf("%s %s", msg.Title, msg.Message)
}
