package commands_test

import (
	"errors"
	"testing"

	"courierdispatch/internal/core/application/usecases/commands"
	"courierdispatch/internal/core/domain/model/courier"
	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCourierCommand(t *testing.T) {
	loc := kernel.MustNewLocation(2, 3)

	t.Run("should keep resolved values", func(t *testing.T) {
		cmd, err := commands.NewCreateCourierCommand("Ivan", "Car", loc)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Ivan", cmd.Name())
		assert.Equal(t, courier.Car, cmd.Transport())
		assert.Equal(t, loc, cmd.Location())
	})

	t.Run("should join every failure", func(t *testing.T) {
		_, err := commands.NewCreateCourierCommand("", "boat", kernel.Location{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		require.ErrorIs(t, err, kernel.ErrLocationIsMissing)
	})

	t.Run("zero value is rejected", func(t *testing.T) {
		var cmd commands.CreateCourierCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateCourierCommandIsNotConstructed)
	})
}

func TestCreateCourierCommandHandler_Handle(t *testing.T) {
	t.Run("should add courier and commit", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateCourierCommand("Ivan", "bicycle", kernel.MustNewLocation(4, 4))
		require.NoError(t, err)

		repo := new(MockCourierRepository)
		uow := new(MockUoW)
		factory := new(MockCourierUoWFactory)

		var stored *courier.Courier
		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("CourierRepository").Return(repo).Once(),
			repo.On("Add", ctx, mock.AnythingOfType("*courier.Courier")).
				Run(func(args mock.Arguments) { stored = args.Get(1).(*courier.Courier) }).
				Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
		)
		uow.On("Rollback", ctx).Return(nil).Maybe()

		handler := commands.NewCreateCourierCommandHandler(factory)
		id, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.True(t, id.IsEqual(stored.ID()))
		assert.Equal(t, courier.Bicycle, stored.Transport())
		assert.Equal(t, courier.Free, stored.Status())
		factory.AssertExpectations(t)
		uow.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("should not commit when add fails", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateCourierCommand("Ivan", "car", kernel.MustNewLocation(1, 1))
		require.NoError(t, err)
		addErr := errors.New("duplicate key")

		repo := new(MockCourierRepository)
		uow := new(MockUoW)
		factory := new(MockCourierUoWFactory)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CourierRepository").Return(repo).Once()
		repo.On("Add", ctx, mock.Anything).Return(addErr).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		handler := commands.NewCreateCourierCommandHandler(factory)
		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, addErr)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
		uow.AssertExpectations(t)
	})

	t.Run("should refuse zero-value command before touching storage", func(t *testing.T) {
		factory := new(MockCourierUoWFactory)
		handler := commands.NewCreateCourierCommandHandler(factory)

		_, err := handler.Handle(t.Context(), commands.CreateCourierCommand{})

		require.ErrorIs(t, err, commands.ErrCreateCourierCommandIsNotConstructed)
		factory.AssertNotCalled(t, "Create")
	})
}
