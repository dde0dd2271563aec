package arango

import "testing"

func TestDescriptor_ContainsIdentityOnly(t *testing.T) {
	s := &Store{cfg: &Config{
		ConnectionURL:  "http://localhost:8529",
		DatabaseName:   "pipeline",
		CollectionName: "documents",
		Username:       "reader",
		Password:       "secret",
	}}

	desc := s.Descriptor()

	if desc["type"] != StoreType {
		t.Errorf("expected type %q, got %v", StoreType, desc["type"])
	}
	if desc["connection_url"] != "http://localhost:8529" {
		t.Errorf("unexpected connection_url: %v", desc["connection_url"])
	}
	if desc["database_name"] != "pipeline" {
		t.Errorf("unexpected database_name: %v", desc["database_name"])
	}
	if desc["collection_name"] != "documents" {
		t.Errorf("unexpected collection_name: %v", desc["collection_name"])
	}
	for key := range desc {
		if key == "username" || key == "password" {
			t.Errorf("credentials must not be serialized, found %q", key)
		}
	}
	if len(desc) != 4 {
		t.Errorf("expected exactly 4 descriptor keys, got %v", desc)
	}
}

func TestConfigFromDescriptor_RoundTrip(t *testing.T) {
	s := &Store{cfg: &Config{
		ConnectionURL:  "https://arango.internal:8529",
		DatabaseName:   "pipeline",
		CollectionName: "documents",
	}}

	creds := Credentials{Username: "reader", Password: "secret", VerifyTLS: true}
	cfg, err := configFromDescriptor(s.Descriptor(), creds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ConnectionURL != "https://arango.internal:8529" {
		t.Errorf("unexpected connection URL: %q", cfg.ConnectionURL)
	}
	if cfg.DatabaseName != "pipeline" || cfg.CollectionName != "documents" {
		t.Errorf("database/collection not restored: %+v", cfg)
	}
	if cfg.Username != "reader" || cfg.Password != "secret" {
		t.Errorf("credentials not folded in: %+v", cfg)
	}
	if !cfg.VerifyTLS {
		t.Error("TLS verification flag not folded in")
	}
}

func TestConfigFromDescriptor_WrongType(t *testing.T) {
	desc := map[string]interface{}{
		"type":            "etcd",
		"connection_url":  "http://localhost:2379",
		"database_name":   "pipeline",
		"collection_name": "documents",
	}
	if _, err := configFromDescriptor(desc, Credentials{}); err == nil {
		t.Error("expected error for foreign descriptor type")
	}
}

func TestConfigFromDescriptor_MissingKey(t *testing.T) {
	desc := map[string]interface{}{
		"type":           StoreType,
		"connection_url": "http://localhost:8529",
		"database_name":  "pipeline",
	}
	if _, err := configFromDescriptor(desc, Credentials{}); err == nil {
		t.Error("expected error for missing collection_name")
	}
}

func TestConfigFromDescriptor_NonStringValue(t *testing.T) {
	desc := map[string]interface{}{
		"type":            StoreType,
		"connection_url":  8529,
		"database_name":   "pipeline",
		"collection_name": "documents",
	}
	if _, err := configFromDescriptor(desc, Credentials{}); err == nil {
		t.Error("expected error for non-string connection_url")
	}
}
