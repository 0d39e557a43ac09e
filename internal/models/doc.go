// Package models defines the core domain models for the wishlist service.
//
// # Models
//
//   - User: a registered account profile (email, privacy flag, list password)
//   - Item: a wishlist entry owned by a user
//
// # Design Principles
//
//  1. **Denormalized ownership**: items reference their owner by email
//     (the UserEmail field), not by user ID. This mirrors the stored data,
//     where email is the de facto foreign key. Changing a user's email would
//     orphan their items; emails are therefore treated as immutable.
//  2. **Profile vs credential**: the User model is the application profile.
//     The password hash lives on the same row but is only ever read by the
//     auth package; it is never serialized in API responses.
//  3. **Loose price typing**: historical item rows may store price as text
//     or leave it null. Price normalization happens at decode time (see the
//     wishlist package), so Item.Price is always a plain float64 in memory.
package models
