// Package testdb provides database helpers for tests.
//
// New returns a private, migrated SQLite in-memory database for each call,
// so tests that use it can run with t.Parallel(). NewPostgres connects to the
// database named by DATABASE_URL (or LIBRARY_TEST_DB_URL), migrates into a
// throwaway schema for the calling test, and skips the test when neither is
// set. WithTx runs a test body inside a transaction that is always rolled back.
//
//	func TestSomething(t *testing.T) {
//	    t.Parallel()
//	    db := testdb.New(t)
//	    customers := database.NewSQLCustomerStore(db, nil)
//	    ...
//	}
package testdb
