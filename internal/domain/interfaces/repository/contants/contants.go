package repocontants

// USER_PREFERENCES_COLLECTION is the collection (mongo) or table (supabase)
// holding UserPreferences records.
const USER_PREFERENCES_COLLECTION = "user_preferences"
