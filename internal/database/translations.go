package database

import (
	"log"

	"marseille-immobilier/internal/models"
)

// seedTranslations loads the initial UI string catalog. Runs once: if the
// table already has rows it is left untouched (admin edits win).
func seedTranslations() {
	var count int64
	if err := DB.Model(&models.Translation{}).Count(&count).Error; err != nil {
		log.Printf("failed to check translations: %v", err)
		return
	}
	if count > 0 {
		return
	}

	total := 0
	for lang, catalog := range seedCatalog {
		for key, value := range catalog {
			t := models.Translation{Key: key, Language: lang, Value: value}
			if err := DB.Create(&t).Error; err != nil {
				log.Printf("failed to seed translation %s/%s: %v", lang, key, err)
				continue
			}
			total++
		}
	}

	log.Printf("seeded %d translations for %d languages", total, len(seedCatalog))
}

// French is the default language and carries the full catalog; other
// languages may be partial and fall back to French at lookup time.
var seedCatalog = map[string]map[string]string{
	"fr": {
		"nav_home":     "Accueil",
		"nav_contact":  "Contact",
		"nav_admin":    "Administration",
		"nav_language": "Langue",

		"site_title":            "Marseille Immobilier",
		"site_subtitle":         "Tous les portails en un seul endroit - Annuaire Immobilier",
		"hero_title":            "Trouvez votre agence immobilière à Marseille",
		"hero_subtitle":         "Découvrez les meilleures agences immobilières de la région marseillaise",
		"agencies_title":        "Nos Agences Partenaires",
		"agency_visit":          "Visiter le site",
		"pricing_title":         "Nos Tarifs",
		"pricing_subtitle":      "Choisissez le plan qui vous convient",
		"plan_basic":            "Basic",
		"plan_premium":          "Premium",
		"plan_basic_price":      "99€/an",
		"plan_premium_price":    "199€/an",
		"plan_basic_features":   "Fiche agence standard\nLien vers votre site\nSupport email",
		"plan_premium_features": "Fiche agence mise en avant\nLogo et images personnalisés\nSupport prioritaire\nStatistiques de visite",
		"plan_contact":          "Nous contacter",

		"contact_title":          "Contactez-nous",
		"contact_subtitle":       "Une question ? Un projet ? N'hésitez pas à nous écrire",
		"contact_name":           "Nom complet",
		"contact_email":          "Email",
		"contact_phone":          "Téléphone",
		"contact_subject":        "Sujet",
		"contact_message":        "Message",
		"contact_send":           "Envoyer",
		"contact_success":        "Votre message a été envoyé avec succès !",
		"contact_error_required": "Veuillez remplir tous les champs obligatoires.",
		"contact_error_save":     "Erreur lors de l'enregistrement du message.",
		"contact_email_error":    "Message enregistré mais erreur lors de l'envoi de l'email.",

		"admin_login":          "Connexion Admin",
		"admin_username":       "Nom d'utilisateur",
		"admin_password":       "Mot de passe",
		"admin_login_btn":      "Se connecter",
		"admin_dashboard":      "Tableau de bord",
		"admin_agencies":       "Agences",
		"admin_messages":       "Messages",
		"admin_logout":         "Déconnexion",
		"login_error_required": "Nom d'utilisateur et mot de passe requis.",
		"login_error_invalid":  "Identifiants invalides.",
		"logout_success":       "Déconnexion réussie.",

		"agencies_add":          "Ajouter une agence",
		"agencies_edit":         "Modifier",
		"agencies_delete":       "Supprimer",
		"agency_name":           "Nom de l'agence",
		"agency_city":           "Ville",
		"agency_website":        "Site web",
		"agency_description":    "Description",
		"agency_logo":           "Logo",
		"agency_cover":          "Image de couverture",
		"agency_plan":           "Plan",
		"agency_active":         "Agence active",
		"agency_save":           "Enregistrer",
		"agency_cancel":         "Annuler",
		"agency_add_success":    "Agence ajoutée avec succès.",
		"agency_edit_success":   "Agence modifiée avec succès.",
		"agency_delete_success": "Agence supprimée avec succès.",
		"agency_error_required": "Nom, ville et site web sont obligatoires.",
		"agency_error_save":     "Erreur lors de l'enregistrement.",
		"agency_error_delete":   "Erreur lors de la suppression.",

		"footer_privacy":   "Politique de confidentialité",
		"footer_copyright": "© 2024 Marseille Immobilier. Tous droits réservés.",

		"privacy_title":   "Politique de confidentialité",
		"privacy_content": "Cette page décrit notre politique de confidentialité...",
	},
	"en": {
		"nav_home":     "Home",
		"nav_contact":  "Contact",
		"nav_admin":    "Admin",
		"nav_language": "Language",

		"site_title":            "Marseille Real Estate",
		"site_subtitle":         "All portals in one place - Real Estate Directory",
		"hero_title":            "Find your real estate agency in Marseille",
		"hero_subtitle":         "Discover the best real estate agencies in the Marseille region",
		"agencies_title":        "Our Partner Agencies",
		"agency_visit":          "Visit website",
		"pricing_title":         "Our Pricing",
		"pricing_subtitle":      "Choose the plan that suits you",
		"plan_basic":            "Basic",
		"plan_premium":          "Premium",
		"plan_basic_price":      "€99/year",
		"plan_premium_price":    "€199/year",
		"plan_basic_features":   "Standard agency listing\nLink to your website\nEmail support",
		"plan_premium_features": "Featured agency listing\nCustom logo and images\nPriority support\nVisit statistics",
		"plan_contact":          "Contact us",

		"contact_title":          "Contact us",
		"contact_subtitle":       "A question? A project? Don't hesitate to write to us",
		"contact_name":           "Full name",
		"contact_email":          "Email",
		"contact_phone":          "Phone",
		"contact_subject":        "Subject",
		"contact_message":        "Message",
		"contact_send":           "Send",
		"contact_success":        "Your message has been sent successfully!",
		"contact_error_required": "Please fill in all required fields.",
		"contact_error_save":     "Error saving the message.",
		"contact_email_error":    "Message saved but error sending email.",

		"admin_login":          "Admin Login",
		"admin_username":       "Username",
		"admin_password":       "Password",
		"admin_login_btn":      "Login",
		"admin_dashboard":      "Dashboard",
		"admin_agencies":       "Agencies",
		"admin_messages":       "Messages",
		"admin_logout":         "Logout",
		"login_error_required": "Username and password required.",
		"login_error_invalid":  "Invalid credentials.",
		"logout_success":       "Successfully logged out.",

		"agencies_add":          "Add agency",
		"agencies_edit":         "Edit",
		"agencies_delete":       "Delete",
		"agency_name":           "Agency name",
		"agency_city":           "City",
		"agency_website":        "Website",
		"agency_description":    "Description",
		"agency_logo":           "Logo",
		"agency_cover":          "Cover image",
		"agency_plan":           "Plan",
		"agency_active":         "Active agency",
		"agency_save":           "Save",
		"agency_cancel":         "Cancel",
		"agency_add_success":    "Agency added successfully.",
		"agency_edit_success":   "Agency updated successfully.",
		"agency_delete_success": "Agency deleted successfully.",
		"agency_error_required": "Name, city and website are required.",
		"agency_error_save":     "Error saving the agency.",
		"agency_error_delete":   "Error deleting the agency.",

		"footer_privacy":   "Privacy Policy",
		"footer_copyright": "© 2024 Marseille Real Estate. All rights reserved.",

		"privacy_title":   "Privacy Policy",
		"privacy_content": "This page describes our privacy policy...",
	},
	"it": {
		"nav_home":     "Home",
		"nav_contact":  "Contatto",
		"nav_admin":    "Admin",
		"nav_language": "Lingua",

		"site_title":       "Immobiliare Marsiglia",
		"site_subtitle":    "Tutti i portali in un unico posto - Elenco Immobiliare",
		"hero_title":       "Trova la tua agenzia immobiliare a Marsiglia",
		"hero_subtitle":    "Scopri le migliori agenzie immobiliari della regione di Marsiglia",
		"agencies_title":   "Le Nostre Agenzie Partner",
		"agency_visit":     "Visita il sito",
		"pricing_title":    "I Nostri Prezzi",
		"pricing_subtitle": "Scegli il piano che fa per te",
		"plan_contact":     "Contattaci",

		"contact_title":          "Contattaci",
		"contact_subtitle":       "Una domanda? Un progetto? Non esitare a scriverci",
		"contact_name":           "Nome completo",
		"contact_email":          "Email",
		"contact_phone":          "Telefono",
		"contact_subject":        "Oggetto",
		"contact_message":        "Messaggio",
		"contact_send":           "Invia",
		"contact_success":        "Il tuo messaggio è stato inviato con successo!",
		"contact_error_required": "Compila tutti i campi obbligatori.",
		"contact_error_save":     "Errore nel salvare il messaggio.",
		"contact_email_error":    "Messaggio salvato ma errore nell'invio email.",

		"footer_privacy":   "Politica Privacy",
		"footer_copyright": "© 2024 Immobiliare Marsiglia. Tutti i diritti riservati.",

		"privacy_title":   "Politica sulla Privacy",
		"privacy_content": "Questa pagina descrive la nostra politica sulla privacy...",
	},
	"es": {
		"nav_home":     "Inicio",
		"nav_contact":  "Contacto",
		"nav_admin":    "Admin",
		"nav_language": "Idioma",

		"site_title":       "Inmobiliaria Marsella",
		"site_subtitle":    "Todos los portales en un solo lugar - Directorio Inmobiliario",
		"hero_title":       "Encuentra tu agencia inmobiliaria en Marsella",
		"hero_subtitle":    "Descubre las mejores agencias inmobiliarias de la región de Marsella",
		"agencies_title":   "Nuestras Agencias Asociadas",
		"agency_visit":     "Visitar sitio",
		"pricing_title":    "Nuestros Precios",
		"pricing_subtitle": "Elige el plan que más te convenga",
		"plan_contact":     "Contáctanos",

		"contact_title":          "Contáctanos",
		"contact_subtitle":       "¿Una pregunta? ¿Un proyecto? No dudes en escribirnos",
		"contact_name":           "Nombre completo",
		"contact_email":          "Email",
		"contact_phone":          "Teléfono",
		"contact_subject":        "Asunto",
		"contact_message":        "Mensaje",
		"contact_send":           "Enviar",
		"contact_success":        "¡Tu mensaje ha sido enviado con éxito!",
		"contact_error_required": "Por favor completa todos los campos obligatorios.",
		"contact_error_save":     "Error al guardar el mensaje.",
		"contact_email_error":    "Mensaje guardado pero error al enviar email.",

		"footer_privacy":   "Política de Privacidad",
		"footer_copyright": "© 2024 Inmobiliaria Marsella. Todos los derechos reservados.",

		"privacy_title":   "Política de Privacidad",
		"privacy_content": "Esta página describe nuestra política de privacidad...",
	},
	"pt": {
		"nav_home":     "Início",
		"nav_contact":  "Contato",
		"nav_admin":    "Admin",
		"nav_language": "Idioma",

		"site_title":       "Imobiliária Marselha",
		"site_subtitle":    "Todos os portais em um só lugar - Diretório Imobiliário",
		"hero_title":       "Encontre sua agência imobiliária em Marselha",
		"hero_subtitle":    "Descubra as melhores agências imobiliárias da região de Marselha",
		"agencies_title":   "Nossas Agências Parceiras",
		"agency_visit":     "Visitar site",
		"pricing_title":    "Nossos Preços",
		"pricing_subtitle": "Escolha o plano que combina com você",
		"plan_contact":     "Entre em contato",

		"contact_title":          "Entre em contato",
		"contact_subtitle":       "Uma pergunta? Um projeto? Não hesite em nos escrever",
		"contact_name":           "Nome completo",
		"contact_email":          "Email",
		"contact_phone":          "Telefone",
		"contact_subject":        "Assunto",
		"contact_message":        "Mensagem",
		"contact_send":           "Enviar",
		"contact_success":        "Sua mensagem foi enviada com sucesso!",
		"contact_error_required": "Por favor preencha todos os campos obrigatórios.",
		"contact_error_save":     "Erro ao salvar a mensagem.",
		"contact_email_error":    "Mensagem salva mas erro ao enviar email.",

		"footer_privacy":   "Política de Privacidade",
		"footer_copyright": "© 2024 Imobiliária Marselha. Todos os direitos reservados.",

		"privacy_title":   "Política de Privacidade",
		"privacy_content": "Esta página descreve nossa política de privacidade...",
	},
}
