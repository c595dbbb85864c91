package apperror

// Kind is the stable classification of a remote failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindUserNotFound
	KindWrongPassword
	KindEmailAlreadyInUse
	KindWeakPassword
	KindInvalidEmail
	KindTooManyRequests
	KindPermissionDenied
	KindUnavailable
	KindFailedPrecondition
)

// Codes used by backend adapters that have no dedicated kind.
const (
	CodeDeadlineExceeded = "deadline-exceeded"
	CodeNotFound         = "not-found"
)

// GenericMessage is shown when a failure carries nothing more specific.
const GenericMessage = "Une erreur inattendue s'est produite"

var knownKinds = []Kind{
	KindUserNotFound,
	KindWrongPassword,
	KindEmailAlreadyInUse,
	KindWeakPassword,
	KindInvalidEmail,
	KindTooManyRequests,
	KindPermissionDenied,
	KindUnavailable,
	KindFailedPrecondition,
}

// Kinds returns every known kind, KindUnknown excluded.
func Kinds() []Kind {
	out := make([]Kind, len(knownKinds))
	copy(out, knownKinds)
	return out
}

// String returns the stable code of the kind.
func (k Kind) String() string {
	switch k {
	case KindUserNotFound:
		return "auth/user-not-found"
	case KindWrongPassword:
		return "auth/wrong-password"
	case KindEmailAlreadyInUse:
		return "auth/email-already-in-use"
	case KindWeakPassword:
		return "auth/weak-password"
	case KindInvalidEmail:
		return "auth/invalid-email"
	case KindTooManyRequests:
		return "auth/too-many-requests"
	case KindPermissionDenied:
		return "permission-denied"
	case KindUnavailable:
		return "unavailable"
	case KindFailedPrecondition:
		return "failed-precondition"
	default:
		return "unknown"
	}
}

// Message returns the user-facing message for the kind.
func (k Kind) Message() string {
	switch k {
	case KindUserNotFound:
		return "Aucun utilisateur trouvé avec cet email"
	case KindWrongPassword:
		return "Mot de passe incorrect"
	case KindEmailAlreadyInUse:
		return "Cet email est déjà utilisé"
	case KindWeakPassword:
		return "Le mot de passe est trop faible"
	case KindInvalidEmail:
		return "Format d'email invalide"
	case KindTooManyRequests:
		return "Trop de tentatives. Veuillez réessayer plus tard"
	case KindPermissionDenied:
		return "Vous n'avez pas les permissions nécessaires"
	case KindUnavailable:
		return "Service temporairement indisponible. Veuillez réessayer"
	case KindFailedPrecondition:
		return "Les données requises ne sont pas disponibles"
	default:
		return GenericMessage
	}
}

// ParseKind resolves a remote code to its kind.
// The boolean is false for codes outside the known set.
func ParseKind(code string) (Kind, bool) {
	for _, k := range knownKinds {
		if k.String() == code {
			return k, true
		}
	}
	return KindUnknown, false
}

// MarshalText renders the kind as its stable code.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
