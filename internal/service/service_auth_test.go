package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// newTestAuthSvc builds an authService wired to mocks.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (
	*authService,
	*mock.MockMasterCredentialStore,
	*mock.MockKeyChainService,
) {
	t.Helper()
	masterStore := mock.NewMockMasterCredentialStore(ctrl)
	keyChain := mock.NewMockKeyChainService(ctrl)
	repo := mock.NewMockVaultEntryRepository(ctrl)
	cipher := mock.NewMockFieldCipher(ctrl)

	svc := NewAuthService(masterStore, repo, keyChain, cipher, logger.Nop()).(*authService)
	return svc, masterStore, keyChain
}

func testCredential() models.MasterCredential {
	return models.MasterCredential{
		Hash: models.PasswordHashRecord{
			Algorithm: crypto.AlgorithmArgon2id,
			Version:   19,
			Params:    models.KDFParams{Time: 1, Memory: 64, Threads: 1, KeyLen: 32},
			Salt:      []byte("hash-salt-16byte"),
			Digest:    make([]byte, 32),
		},
		KeySalt:   []byte("key-salt-16bytes"),
		KeyParams: models.KDFParams{Time: 1, Memory: 64, Threads: 1, KeyLen: 32},
	}
}

// ── Initialize ───────────────────────────────────────────────────────────────

func TestAuthService_Initialize_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, masterStore, keyChain := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	cred := testCredential()

	gomock.InOrder(
		masterStore.EXPECT().Exists(ctx).Return(false, nil),
		keyChain.EXPECT().NewMasterCredential("correct-horse").Return(cred, nil),
		masterStore.EXPECT().Save(ctx, cred).Return(nil),
	)

	require.NoError(t, svc.Initialize(ctx, "correct-horse"))
}

func TestAuthService_Initialize_AlreadyInitialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, masterStore, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	masterStore.EXPECT().Exists(ctx).Return(true, nil)

	assert.ErrorIs(t, svc.Initialize(ctx, "correct-horse"), ErrVaultAlreadyInitialized)
}

func TestAuthService_Initialize_EmptyPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	assert.ErrorIs(t, svc.Initialize(context.Background(), ""), ErrEmptyMasterPassword)
}

func TestAuthService_Initialize_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("exists fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, masterStore, _ := newTestAuthSvc(t, ctrl)

		masterStore.EXPECT().Exists(ctx).Return(false, store.ErrStorage)

		assert.ErrorIs(t, svc.Initialize(ctx, "pw"), store.ErrStorage)
	})

	t.Run("hashing fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, masterStore, keyChain := newTestAuthSvc(t, ctrl)

		masterStore.EXPECT().Exists(ctx).Return(false, nil)
		keyChain.EXPECT().NewMasterCredential("pw").Return(models.MasterCredential{}, crypto.ErrHashing)

		assert.ErrorIs(t, svc.Initialize(ctx, "pw"), crypto.ErrHashing)
	})

	t.Run("save fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, masterStore, keyChain := newTestAuthSvc(t, ctrl)

		masterStore.EXPECT().Exists(ctx).Return(false, nil)
		keyChain.EXPECT().NewMasterCredential("pw").Return(testCredential(), nil)
		masterStore.EXPECT().Save(ctx, gomock.Any()).Return(store.ErrStorage)

		assert.ErrorIs(t, svc.Initialize(ctx, "pw"), store.ErrStorage)
	})
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestAuthService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, masterStore, keyChain := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	cred := testCredential()

	masterStore.EXPECT().Load(ctx).Return(cred, nil).Times(2)
	keyChain.EXPECT().VerifyMasterPassword("correct-horse", cred.Hash).Return(true, nil)
	keyChain.EXPECT().VerifyMasterPassword("wrong", cred.Hash).Return(false, nil)

	ok, err := svc.Authenticate(ctx, "correct-horse")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Authenticate(ctx, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthService_Authenticate_NotInitialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, masterStore, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	masterStore.EXPECT().Load(ctx).Return(models.MasterCredential{}, store.ErrMasterCredentialNotFound)

	ok, err := svc.Authenticate(ctx, "pw")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrVaultNotInitialized)
}

func TestAuthService_Authenticate_InvalidRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, masterStore, keyChain := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	masterStore.EXPECT().Load(ctx).Return(testCredential(), nil)
	keyChain.EXPECT().VerifyMasterPassword("pw", gomock.Any()).Return(false, crypto.ErrInvalidRecord)

	_, err := svc.Authenticate(ctx, "pw")
	assert.ErrorIs(t, err, crypto.ErrInvalidRecord)
}

// ── Unlock ───────────────────────────────────────────────────────────────────

func TestAuthService_Unlock_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, masterStore, keyChain := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	cred := testCredential()
	key := make([]byte, 32)

	gomock.InOrder(
		masterStore.EXPECT().Load(ctx).Return(cred, nil),
		keyChain.EXPECT().VerifyMasterPassword("correct-horse", cred.Hash).Return(true, nil),
		keyChain.EXPECT().DeriveSessionKey("correct-horse", cred.KeySalt, cred.KeyParams).Return(key, nil),
	)

	sess, err := svc.Unlock(ctx, "correct-horse")
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.IsType(t, &Session{}, sess)
}

func TestAuthService_Unlock_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, masterStore, keyChain := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	masterStore.EXPECT().Load(ctx).Return(testCredential(), nil)
	keyChain.EXPECT().VerifyMasterPassword("wrong", gomock.Any()).Return(false, nil)

	sess, err := svc.Unlock(ctx, "wrong")
	assert.Nil(t, sess)
	assert.ErrorIs(t, err, crypto.ErrAuthenticationFailed)
}

func TestAuthService_Unlock_NotInitialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, masterStore, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	masterStore.EXPECT().Load(ctx).Return(models.MasterCredential{}, store.ErrMasterCredentialNotFound)

	_, err := svc.Unlock(ctx, "pw")
	assert.ErrorIs(t, err, ErrVaultNotInitialized)
}

func TestAuthService_Unlock_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, masterStore, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	masterStore.EXPECT().Load(ctx).Return(models.MasterCredential{}, crypto.ErrInvalidRecord)

	_, err := svc.Unlock(ctx, "pw")
	assert.ErrorIs(t, err, crypto.ErrInvalidRecord)
	assert.NotErrorIs(t, err, ErrVaultNotInitialized)
}

func TestAuthService_Unlock_DeriveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, masterStore, keyChain := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	masterStore.EXPECT().Load(ctx).Return(testCredential(), nil)
	keyChain.EXPECT().VerifyMasterPassword("pw", gomock.Any()).Return(true, nil)
	keyChain.EXPECT().DeriveSessionKey("pw", gomock.Any(), gomock.Any()).Return(nil, errors.New("out of memory"))

	sess, err := svc.Unlock(ctx, "pw")
	assert.Nil(t, sess)
	assert.ErrorContains(t, err, "derive session key")
}
