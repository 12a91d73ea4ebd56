package configs

import "fmt"

// MinVaultSecretLength is the shortest accepted VAULT_SECRET.
const MinVaultSecretLength = 16

// Vault holds the secret every credential key is derived from. Changing
// it makes all stored credentials unreadable.
type Vault struct {
	Secret string `env:"SECRET,required,notEmpty,unset"`
}

func (c Vault) Validate() error {
	if len(c.Secret) < MinVaultSecretLength {
		return fmt.Errorf("VAULT_SECRET must be at least %d characters", MinVaultSecretLength)
	}
	return nil
}
