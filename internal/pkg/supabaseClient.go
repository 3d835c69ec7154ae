package client

import (
	"log"
	"os"

	supa "github.com/supabase-community/supabase-go"
)

func SupabaseClient() *supa.Client {
	client, err := supa.NewClient(os.Getenv("SUPABASE_URL"), os.Getenv("SUPABASE_KEY"), nil)
	if err != nil {
		log.Fatalf("error connecting to Supabase: %v", err)
	}
	return client
}
