package arango

import "fmt"

// StoreType identifies this backend in serialized store descriptors.
const StoreType = "arangodb"

// Descriptor keys.
const (
	descriptorTypeKey       = "type"
	descriptorConnectionKey = "connection_url"
	descriptorDatabaseKey   = "database_name"
	descriptorCollectionKey = "collection_name"
)

// Credentials carries the secrets a serialized descriptor deliberately
// omits. They must be supplied again when reconstructing a store.
type Credentials struct {
	Username  string
	Password  string
	VerifyTLS bool
}

// Descriptor serializes the store's identity to a mapping that is
// sufficient to reopen the same collection. Credentials are not part of
// the descriptor and must be provided separately to FromDescriptor.
func (s *Store) Descriptor() map[string]interface{} {
	return map[string]interface{}{
		descriptorTypeKey:       StoreType,
		descriptorConnectionKey: s.cfg.ConnectionURL,
		descriptorDatabaseKey:   s.cfg.DatabaseName,
		descriptorCollectionKey: s.cfg.CollectionName,
	}
}

// FromDescriptor reconstructs a store from a descriptor produced by
// Descriptor, opening a fresh session against the same collection.
func FromDescriptor(desc map[string]interface{}, creds Credentials) (*Store, error) {
	cfg, err := configFromDescriptor(desc, creds)
	if err != nil {
		return nil, err
	}
	return NewStore(cfg)
}

// configFromDescriptor validates a descriptor and folds it together with
// the supplied credentials into a Config.
func configFromDescriptor(desc map[string]interface{}, creds Credentials) (*Config, error) {
	storeType, err := descriptorString(desc, descriptorTypeKey)
	if err != nil {
		return nil, err
	}
	if storeType != StoreType {
		return nil, fmt.Errorf("descriptor type %q is not %q", storeType, StoreType)
	}

	connectionURL, err := descriptorString(desc, descriptorConnectionKey)
	if err != nil {
		return nil, err
	}
	databaseName, err := descriptorString(desc, descriptorDatabaseKey)
	if err != nil {
		return nil, err
	}
	collectionName, err := descriptorString(desc, descriptorCollectionKey)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	cfg.ConnectionURL = connectionURL
	cfg.DatabaseName = databaseName
	cfg.CollectionName = collectionName
	cfg.Username = creds.Username
	cfg.Password = creds.Password
	cfg.VerifyTLS = creds.VerifyTLS
	return cfg, nil
}

func descriptorString(desc map[string]interface{}, key string) (string, error) {
	raw, ok := desc[key]
	if !ok {
		return "", fmt.Errorf("descriptor is missing key %q", key)
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("descriptor key %q holds %T, expected string", key, raw)
	}
	if value == "" {
		return "", fmt.Errorf("descriptor key %q is empty", key)
	}
	return value, nil
}
