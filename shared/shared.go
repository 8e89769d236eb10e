package shared

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/timezone"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// ConvertStringToInt parses a trimmed form or path value.
func ConvertStringToInt(value string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(value)) //nolint:wrapcheck
}

// CalculateTotalPage never reports fewer than one page.
func CalculateTotalPage(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 1
	}

	return (total + limit - 1) / limit
}

// TransformFields builds the SET map of a partial update from the non-zero
// db-tagged fields of data, stamped with the modifier. Pointer fields count
// as set when non-nil, so an explicit zero can be written.
func TransformFields(data any, username string) map[string]any {
	val := reflect.Indirect(reflect.ValueOf(data))
	typ := val.Type()

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		column := typ.Field(index).Tag.Get("db")

		if column == constant.Empty || column == "-" || field.IsZero() {
			continue
		}

		updatedFields[column] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins the prefix and parts with a colon, e.g. "room:get:<id>".
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), constant.Colon)
}

// BuildCacheKeyWithQuery derives a stable key from the list parameters and filter.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	raw, err := json.Marshal(struct {
		Params dto.QueryParams `json:"params"`
		Where  string          `json:"where"`
		Args   map[string]any  `json:"args"`
	}{params, where, args})
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to marshal cache key query")

		return prefix
	}

	sum := sha256.Sum256(raw)

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:]))
}

// InvalidateCaches removes every key under prefix. Errors are logged only.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Colon+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// PublishEvents sends messages in the background once the caller's work is
// committed. Nothing is sent when Kafka is disabled.
func PublishEvents(ctx context.Context, client kafka.Client, cfg *config.Config, topic string, messages ...kafka.Message) {
	if client == nil || cfg == nil || !cfg.Kafka.Enable || topic == constant.Empty || len(messages) == 0 {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := client.SendMessages(c, topic, messages...); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("failed to publish events")
		}
	}()
}

// Actor returns the user id and role put in the context by the auth middleware.
func Actor(ctx context.Context) (userID, role string) {
	userID, _ = ctx.Value(constant.ContextKeyUserID).(string)
	role, _ = ctx.Value(constant.ContextKeyUserRole).(string)

	return userID, role
}

// CanManage reports whether the caller is an admin or the owner.
func CanManage(ctx context.Context, ownerID string) bool {
	userID, role := Actor(ctx)
	if role == constant.RoleAdmin {
		return true
	}

	return userID != constant.Empty && userID == ownerID
}
