package services

import (
	"context"
	"log/slog"
	"time"

	"budget-tracker/internal/models"
)

type ActivityLogger struct {
	logger *slog.Logger
}

func NewActivityLogger(logger *slog.Logger) ActivityLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &ActivityLogger{
		logger: logger,
	}
}

func (al *ActivityLogger) LogUserProvisioned(ctx context.Context, user *models.User) {
	al.logger.InfoContext(ctx, "user provisioned",
		slog.String("event_type", "user_provisioned"),
		slog.String("user_id", user.ID.String()),
		slog.String("external_id", user.ExternalID),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (al *ActivityLogger) LogTransactionCreated(ctx context.Context, transaction *models.Transaction) {
	attrs := []slog.Attr{
		slog.String("event_type", "transaction_created"),
		slog.String("transaction_id", transaction.ID.String()),
		slog.String("user_id", transaction.UserID.String()),
		slog.String("type", string(transaction.TransactionType)),
		slog.String("amount", transaction.Amount.StringFixed(2)),
		slog.String("category_id", transaction.CategoryID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	}

	if transaction.SubCategoryID != nil {
		attrs = append(attrs, slog.String("sub_category_id", transaction.SubCategoryID.String()))
	}

	al.logger.LogAttrs(ctx, slog.LevelInfo, "transaction created", attrs...)
}

func (al *ActivityLogger) LogSubCategoryCreated(ctx context.Context, sub *models.SubCategory) {
	al.logger.InfoContext(ctx, "sub-category created",
		slog.String("event_type", "sub_category_created"),
		slog.String("sub_category_id", sub.ID.String()),
		slog.String("category_id", sub.CategoryID.String()),
		slog.String("name", sub.Name),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (al *ActivityLogger) LogStorageFailure(ctx context.Context, operation string, err error) {
	al.logger.ErrorContext(ctx, "storage failure",
		slog.String("event_type", "storage_failure"),
		slog.String("operation", operation),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}
