// Package storage реализует хранилище данных витрины поверх документной базы
// MongoDB: три коллекции (users, products, orders) с операциями создания,
// чтения, частичного обновления, удаления и подсчета. Схемы не мигрируются —
// эволюция формы документов только аддитивная.
package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound возвращается, когда запрошенный документ отсутствует.
var ErrNotFound = errors.New("not found")

const (
	usersCollection    = "users"
	productsCollection = "products"
	ordersCollection   = "orders"
)

// Storage инкапсулирует клиент MongoDB и доступ к коллекциям витрины.
// Клиент создается один раз на процесс до приема первого запроса.
type Storage struct {
	client *mongo.Client
	db     *mongo.Database
}

// New подключается к MongoDB, проверяет доступность базы и создает
// уникальный индекс по email пользователей.
func New(ctx context.Context, url, dbName string) (*Storage, error) {
	const op = "storage.New"

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s := &Storage{
		client: client,
		db:     client.Database(dbName),
	}
	if err := s.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

// Close разрывает соединение с базой.
func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Storage) users() *mongo.Collection {
	return s.db.Collection(usersCollection)
}

func (s *Storage) products() *mongo.Collection {
	return s.db.Collection(productsCollection)
}

func (s *Storage) orders() *mongo.Collection {
	return s.db.Collection(ordersCollection)
}

// ensureIndexes создает индексы: уникальность email — единственное
// ограничение схемы во всей базе.
func (s *Storage) ensureIndexes(ctx context.Context) error {
	_, err := s.users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// newestFirst — порядок сортировки списков: самые свежие записи первыми.
func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
}
