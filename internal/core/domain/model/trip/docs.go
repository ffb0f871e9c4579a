// Package trip implements the Trip aggregate: a batch of up to three
// same-route orders assigned to one delivery partner for a single run.
//
// A trip is created atomically with its full order set, which never changes
// afterwards. Its status advances from BatchAssigned to PendingStoreConfirm
// when all deliveries finish, and to Closed once the partner confirms return
// to the store.
package trip
