// Package pharmacy is the directory of on-duty pharmacies.
//
// Pharmacists register a listing together with their account. A listing is
// hidden from the public search until an administrator verifies it, and only
// verified listings whose status is "en garde" are returned by Search.
// Administrators list, count and moderate every listing.
//
// Remote work (account sign-up, store writes) runs through a retry.Retrier
// and failures leave the Service classified with apperror.Classify, so HTTP
// handlers only have to render them.
package pharmacy
