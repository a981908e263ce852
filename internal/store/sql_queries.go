package store

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/oyou-server/models"
	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns      = []string{"id", "email", "name", "photo", "role", "profile", "created_at"}
	viewColumns      = []string{"id", "email", "page", "title", "link", "display_link", "image", "payload", "viewed_at"}
	searchLogColumns = []string{"id", "query", "email", "results", "created_at"}
)

func buildInsertUserQuery(id string, user models.User) (string, []any, error) {
	profile, err := marshalJSONB(user.Profile)
	if err != nil {
		return "", nil, err
	}

	return psql.Insert(user.TableName()).
		Columns(userColumns...).
		Values(id, user.Email, user.Name, user.Photo, string(user.Role), profile, user.CreatedAt).
		ToSql()
}

func buildSelectUsersQuery(where sq.Sqlizer) (string, []any, error) {
	query := psql.Select(userColumns...).From(models.User{}.TableName())
	if where != nil {
		query = query.Where(where)
	}

	return query.OrderBy("created_at").ToSql()
}

func buildInsertViewQuery(id string, view models.View) (string, []any, error) {
	payload, err := marshalJSONB(view.Payload)
	if err != nil {
		return "", nil, err
	}

	return psql.Insert(view.TableName()).
		Columns(viewColumns...).
		Values(id, view.Email, view.Page, view.Title, view.Link, view.DisplayLink, view.Image, payload, view.ViewedAt).
		ToSql()
}

func buildSelectViewsQuery(where sq.Sqlizer) (string, []any, error) {
	query := psql.Select(viewColumns...).From(models.View{}.TableName())
	if where != nil {
		query = query.Where(where)
	}

	return query.OrderBy("viewed_at").ToSql()
}

func buildInsertSearchLogQuery(id string, searchLog models.SearchLog) (string, []any, error) {
	return psql.Insert(searchLog.TableName()).
		Columns(searchLogColumns...).
		Values(id, searchLog.Query, searchLog.Email, searchLog.Results, searchLog.CreatedAt).
		ToSql()
}

func buildSelectSearchLogsQuery() (string, []any, error) {
	return psql.Select(searchLogColumns...).
		From(models.SearchLog{}.TableName()).
		OrderBy("created_at DESC").
		ToSql()
}

func buildDeleteByIDQuery(table, id string) (string, []any, error) {
	return psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
}

// marshalJSONB encodes a free-form object for a JSONB column; nil is stored
// as an empty object.
func marshalJSONB(m map[string]any) ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}
	return b, nil
}

func unmarshalJSONB(b []byte) (map[string]any, error) {
	if len(b) == 0 {
		return nil, nil
	}

	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}
	return nonEmpty(m), nil
}
