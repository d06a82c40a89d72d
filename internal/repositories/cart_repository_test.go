package repository_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/henriquedps/uzzestore/internal/models"
	repository "github.com/henriquedps/uzzestore/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cartTTL = 24 * time.Hour

func TestCartRepository_GetCart(t *testing.T) {

	t.Run("Missing Key Means Empty Cart", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		repo := repository.NewCartRepo(client, cartTTL)

		mock.ExpectGet("cart:session-1").RedisNil()

		// Act
		cart, err := repo.GetCart(context.Background(), "session-1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "session-1", cart.SessionID)
		assert.True(t, cart.IsEmpty())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Stored Cart Round Trips", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		repo := repository.NewCartRepo(client, cartTTL)

		stored := models.NewCart("session-1")
		stored.AddItem(1, 2, "M", "Azul")

		data, err := json.Marshal(stored)
		require.NoError(t, err)

		mock.ExpectGet("cart:session-1").SetVal(string(data))

		// Act
		cart, err := repo.GetCart(context.Background(), "session-1")

		// Assert
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, int64(1), cart.Items[0].ProductID)
		assert.Equal(t, 2, cart.Items[0].Quantity)
	})

	t.Run("Corrupt Payload Is An Error", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		repo := repository.NewCartRepo(client, cartTTL)

		mock.ExpectGet("cart:session-1").SetVal("not json")

		// Act
		_, err := repo.GetCart(context.Background(), "session-1")

		// Assert
		assert.ErrorContains(t, err, "failed to unmarshal cart")
	})
}

func TestCartRepository_SaveCart(t *testing.T) {
	// Arrange
	client, mock := redismock.NewClientMock()
	repo := repository.NewCartRepo(client, cartTTL)

	cart := models.NewCart("session-1")
	cart.AddItem(1, 2, "M", "Azul")

	data, err := json.Marshal(cart)
	require.NoError(t, err)

	mock.ExpectSet("cart:session-1", data, cartTTL).SetVal("OK")

	// Act
	err = repo.SaveCart(context.Background(), cart)

	// Assert
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_DeleteCart(t *testing.T) {
	// Arrange
	client, mock := redismock.NewClientMock()
	repo := repository.NewCartRepo(client, cartTTL)

	mock.ExpectDel("cart:session-1").SetVal(1)

	// Act
	err := repo.DeleteCart(context.Background(), "session-1")

	// Assert
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
